package main

import "errors"

var (
	ErrCouldNotResolvePath  = errors.New("could not resolve the path")
	ErrItemIsNotAFolder     = errors.New("the item is not a folder")
	ErrItemIsNotAFile       = errors.New("the item is not a file")
	ErrFileHasNoBlob        = errors.New("the file has no stored audio data")
	ErrNoPlanSelected       = errors.New("no plan was selected")
	ErrBillingNotConfigured = errors.New("billing is not configured")
	ErrNotAWavFile          = errors.New("not a wav file")
	ErrUnknownTagField      = errors.New("unknown tag field")
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
