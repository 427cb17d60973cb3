package pqdif

import "github.com/scigolib/pqdif/internal/core"

// CompressionAlgorithm selects the codec applied to a record body.
type CompressionAlgorithm = core.CompressionAlgorithm

// CompressionStyle selects which records in a file are compressed.
type CompressionStyle = core.CompressionStyle

const (
	CompressionNone  = core.CompressionNone
	CompressionZlib  = core.CompressionZlib
	CompressionPKZIP = core.CompressionPKZIP
)

const (
	CompressionStyleNone        = core.CompressionStyleNone
	CompressionStyleRecordLevel = core.CompressionStyleRecordLevel
	CompressionStyleTotalFile   = core.CompressionStyleTotalFile
)
