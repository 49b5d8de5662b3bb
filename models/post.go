// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"path"
	"strings"
	"time"
)

// Post is a media post published by a user.
type Post struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"creatorId"`
	CreatorName string    `json:"creatorName"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"isPrivate"`
	IsVideo     bool      `json:"isVideo"`
	MediaKeys   []string  `json:"-"`
	MediaURLs   []string  `json:"mediaUrls"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnerID returns the id of the user that published the post.
func (p Post) OwnerID() int64 { return p.UserID }

// IsPublic reports whether the post is visible to everyone.
func (p Post) IsPublic() bool { return !p.IsPrivate }

// MediaFile is an uploaded file that has not been stored yet.
type MediaFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// IsVideo reports whether the file is a video by content type or extension.
func (f MediaFile) IsVideo() bool {
	if strings.HasPrefix(f.ContentType, "video/") {
		return true
	}
	switch strings.ToLower(path.Ext(f.FileName)) {
	case ".mp4", ".mov", ".webm":
		return true
	}
	return false
}

// IsImage reports whether the file is an image by content type or extension.
func (f MediaFile) IsImage() bool {
	if strings.HasPrefix(f.ContentType, "image/") {
		return true
	}
	switch strings.ToLower(path.Ext(f.FileName)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// NewPost carries the fields of a post being created.
type NewPost struct {
	Description string
	IsPrivate   bool
	Media       []MediaFile
}

// UpdatePostRequest is the body of a post update.
type UpdatePostRequest struct {
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}

// Comment is a text comment on a post.
type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	UserID     int64     `json:"userId"`
	AuthorName string    `json:"userName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OwnerID returns the id of the comment author.
func (c Comment) OwnerID() int64 { return c.UserID }

// CommentRequest is the body of comment create and update calls.
type CommentRequest struct {
	Content string `json:"content"`
}

// Like links a user to a post they liked. A user likes a post at most once.
type Like struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
