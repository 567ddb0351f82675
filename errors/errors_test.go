package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "path does not exist")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "path does not exist", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] path does not exist", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "segment %q is empty", "")
	require.Equal(t, `segment "" is empty`, err.Message())
}

func TestErrorClassification_IsRetryable(t *testing.T) {
	tests := []struct {
		name           string
		classification ErrorClassification
		want           bool
	}{
		{name: "retryable", classification: ClassificationRetryable, want: true},
		{name: "permanent", classification: ClassificationPermanent, want: false},
		{name: "unknown", classification: ErrorClassification("UNKNOWN"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.classification.IsRetryable())
		})
	}
}

func TestGetDefaultClassification(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want ErrorClassification
	}{
		{code: CodeIO, want: ClassificationRetryable},
		{code: CodeUnavailable, want: ClassificationRetryable},
		{code: CodeForbidden, want: ClassificationPermanent},
		{code: CodeNotFound, want: ClassificationPermanent},
		{code: ErrorCode("SOMETHING_ELSE"), want: ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, getDefaultClassification(tt.code))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(cause, CodeIO, "failed to write output")

	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.True(t, Is(err, cause))
	require.Equal(t, "[IO_ERROR] failed to write output: disk on fire", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "nothing"))
	require.Nil(t, Wrapf(nil, CodeIO, "nothing %d", 1))
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := New(CodeIO, "short write")
	outer := Wrap(inner, CodeInternal, "copy failed")

	require.Equal(t, CodeInternal, outer.Code())
	require.True(t, outer.Classification().IsRetryable())
}

func TestWithContext(t *testing.T) {
	original := New(CodeForbidden, "cannot make writable")
	withPath := WithContext(original, "path", "/tmp/a")
	withBoth := WithContext(withPath, "mode", "0444")

	require.Nil(t, original.Context())
	require.Equal(t, map[string]interface{}{"path": "/tmp/a"}, withPath.Context())
	require.Equal(t, map[string]interface{}{"path": "/tmp/a", "mode": "0444"}, withBoth.Context())
	require.Equal(t, CodeForbidden, withBoth.Code())
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("plain")
	err := WithContext(cause, "path", "/x")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.Nil(t, WithContext(nil, "k", "v"))
}

func TestWithContext_ReturnsCopy(t *testing.T) {
	err := WithContext(New(CodeIO, "x"), "path", "/a")
	ctx := err.Context()
	ctx["path"] = "/b"

	require.Equal(t, "/a", err.Context()["path"])
}

func TestWithClassification(t *testing.T) {
	err := WithClassification(New(CodeForbidden, "denied"), ClassificationRetryable)

	require.Equal(t, CodeForbidden, err.Code())
	require.True(t, IsRetryable(err))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestGetCode(t *testing.T) {
	require.Equal(t, CodeUnknown, GetCode(nil))
	require.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	require.Equal(t, CodeNotFound, GetCode(New(CodeNotFound, "x")))

	wrapped := fmt.Errorf("outer: %w", New(CodeConflict, "inner"))
	require.Equal(t, CodeConflict, GetCode(wrapped))
}

func TestGetClassification(t *testing.T) {
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
	require.Equal(t, ClassificationPermanent, GetClassification(stderrors.New("plain")))
	require.Equal(t, ClassificationRetryable, GetClassification(New(CodeIO, "x")))
}
