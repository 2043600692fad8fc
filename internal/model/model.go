// Package model defines the core data types for restup.
package model

// Model is the interface all persisted entities implement.
type Model interface {
	SetKey(key string)
	GetKey() string
}
