package models

// Owned is implemented by every resource that belongs to a single user.
type Owned interface {
	OwnerID() int64
}

// Shareable is an Owned resource that can be made readable by everyone.
type Shareable interface {
	Owned
	IsPublic() bool
}
