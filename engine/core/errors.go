package core

import (
	"errors"
)

var (
	ErrGraphicsUnavailable = errors.New("OpenGL 4.1 isn't available")
	ErrShaderCompile       = errors.New("shader compilation failed")
	ErrShaderLink          = errors.New("shader program link failed")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrUnsupportedAsset    = errors.New("unsupported asset type")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrUnknown             = errors.New("unknown")
)
