package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithCodeKeepsChain(t *testing.T) {
	err := WrapWithCode(ErrInvalidTimeGranularity, CodeInvalidTimeGranularity, "Please pick a quarter hour")

	assert.True(t, IsInvalidTimeGranularity(err))
	assert.Equal(t, CodeInvalidTimeGranularity, GetCode(err))
	assert.Equal(t, "Please pick a quarter hour", GetMessage(err))
}

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := WrapWithCode(fmt.Errorf("connection refused"), CodeGatewayFailure, "gateway down")
	err := Wrap(inner, "create scheduler")

	assert.Equal(t, CodeGatewayFailure, GetCode(err))
	assert.True(t, IsGatewayFailure(err))
	assert.Equal(t, "create scheduler", GetMessage(err))
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "x"))
	assert.NoError(t, WrapWithCode(nil, CodeNotFound, "x"))
	assert.Equal(t, "", GetMessage(nil))
	assert.Equal(t, "", GetCode(fmt.Errorf("plain")))
}
