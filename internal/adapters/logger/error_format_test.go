package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"

	"github.com/curveforge/meshsync/internal/adapters/logger"
)

func TestFormatErrorChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "zerr single error",
			err:  zerr.New("zerr error"),
			want: "Error: zerr error",
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			want: "Error: outer layer\n" +
				"\n" +
				"  Caused by:\n" +
				"    → middle layer\n" +
				"    → root cause",
		},
		{
			name: "zerr wrapping a standard error",
			err:  zerr.Wrap(errors.New("file does not exist"), "document read failed"),
			want: "Error: document read failed\n" +
				"\n" +
				"  Caused by:\n" +
				"    → file does not exist",
		},
		{
			name: "multiline cause keeps indentation",
			err:  zerr.Wrap(errors.New("line1\nline2"), "outer"),
			want: "Error: outer\n" +
				"\n" +
				"  Caused by:\n" +
				"    → line1\n" +
				"      line2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorChainExported(tt.err))
		})
	}
}
