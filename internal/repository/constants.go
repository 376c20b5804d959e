package repository

import "errors"

var errNotAnArray = errors.New("not a JSON array")

// Error messages
const (
	ErrMsgReadCollectionFailed   = "failed to read %s collection: %w"
	ErrMsgWriteCollectionFailed  = "failed to write %s collection: %w"
	ErrMsgDecodeCollectionFailed = "failed to decode %s collection: %w"
	ErrMsgEncodeCollectionFailed = "failed to encode %s collection: %w"
)

// Log messages
const (
	LogMsgCollectionCreated      = "Collection not found, created empty collection"
	LogMsgCollectionDecodeFailed = "Error decoding collection, returning an empty list"
	LogMsgCollectionSaved        = "Collection saved"
)
