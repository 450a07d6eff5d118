// Package kv is the key-value persistence medium the storefront writes
// through. Values are opaque bytes; the whole cart is one value.
package kv

import "errors"

type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrStoreClosed = errors.New("store is closed")
)
