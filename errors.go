/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"log"
	"time"
)

var (
	ErrInsufficientParticipants = errors.New("need at least 2 distinct participant names")
	ErrNameNotFound             = errors.New("no participant matches that name")
	ErrAmbiguousName            = errors.New("multiple participants match that name")
	ErrAlreadyViewed            = errors.New("assignment already viewed")
	ErrSelectionCanceled        = errors.New("selection canceled")

	errInputClosed = errors.New("input closed")
)

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}
