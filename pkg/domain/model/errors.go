package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrTailNotFound = goerr.New("tail number not found")
)
