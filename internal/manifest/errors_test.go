package manifest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := Malformedf(Pos{Filename: "build.hcl", Line: 4, Column: 3}, "android.compile_sdk", "must be a number, got %s", "string")
	assert.Equal(t, "build.hcl:4,3: malformed manifest: android.compile_sdk: must be a number, got string", err.Error())

	err = InvalidDependencyf(Pos{}, "dependencies[0]", "version is empty")
	assert.Equal(t, "invalid dependency spec: dependencies[0]: version is empty", err.Error())
}

func TestError_KindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", InvalidDependencyf(Pos{}, "x", "y"))
	assert.True(t, errors.Is(wrapped, ErrInvalidDependencySpec))
	assert.False(t, errors.Is(wrapped, ErrMalformedManifest))
}

func TestPos_String(t *testing.T) {
	assert.Equal(t, "", Pos{}.String())
	assert.Equal(t, "a.yaml", Pos{Filename: "a.yaml"}.String())
	assert.Equal(t, "a.yaml:7", Pos{Filename: "a.yaml", Line: 7}.String())
}
