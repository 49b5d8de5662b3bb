// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed bearer token together with the claims it carries.
//
// The subject claim holds the user's email. Tokens are never persisted:
// they are verified by signature and expiry alone.
type Token struct {
	// RegisteredClaims provides the sub, iat and exp claims.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
