package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const DefaultSize = 16

var RandReader io.Reader = rand.Reader
var ErrSizeTooSmall error = errors.New("token size too small")

// Generator produces opaque URL-safe tokens of Size random bytes, base64url encoded without padding.
type Generator struct {
	size int
}

func NewGenerator(size int) (*Generator, error) {
	if size < DefaultSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrSizeTooSmall, size, DefaultSize)
	}

	return &Generator{
		size: size,
	}, nil
}

func (g *Generator) Generate() (string, error) {
	raw := make([]byte, g.size)
	if _, err := io.ReadFull(RandReader, raw); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
