package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	err := NewGuardRejected()
	domainErr := ToDomainError(err)
	require.Equal(t, CodeGuardRejected, domainErr.Code)
	require.False(t, domainErr.Internal())
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("connection reset")
	domainErr := ToDomainError(fmt.Errorf("send: %w", cause))
	require.Equal(t, CodePlatformCallFailed, domainErr.Code)
	require.True(t, domainErr.Internal())
	require.ErrorIs(t, domainErr, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
}

func TestUnrecognizedCategoryKeepsValue(t *testing.T) {
	err := NewUnrecognizedCategory("billing")
	domainErr := ToDomainError(err)
	require.Equal(t, CodeUnrecognizedCategory, domainErr.Code)
	require.Contains(t, domainErr.Error(), "billing")
	require.Equal(t, "Not recognized category.", domainErr.Message)
}
