package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type staticProvider map[string]string

func (p staticProvider) GetMessage(key string) string {
	if msg, ok := p[key]; ok {
		return msg
	}
	return key
}

func TestTrError_Error(t *testing.T) {
	err := &TrError{
		sentinel:        errors.New("test.key"),
		key:             "test.key",
		messageProvider: staticProvider{"test.key": "failed for %s"},
	}

	assert.Equal(t, "failed for %s", err.Error())
	assert.Equal(t, "failed for cargo", err.WithArgs("cargo").Error())
	assert.Equal(t, "failed for cargo: cause", err.WithArgs("cargo").Wrap(errors.New("cause")).Error())
}

func TestTrError_CopiesShareSentinel(t *testing.T) {
	base := NewError("test.key")
	other := NewError("test.key")

	withArgs := base.WithArgs(1)
	wrapped := withArgs.Wrap(errors.New("cause"))

	assert.True(t, errors.Is(withArgs, base))
	assert.True(t, errors.Is(wrapped, base))
	assert.False(t, errors.Is(wrapped, other), "sentinels are per NewError call")
	assert.Empty(t, base.Args(), "base is not modified")
	assert.Nil(t, base.Unwrap())
	assert.Equal(t, []interface{}{1}, wrapped.Args())
	assert.Equal(t, "test.key", wrapped.Key())
}

func TestTrError_IsThroughChain(t *testing.T) {
	outer := NewError("outer")
	inner := NewError("inner")
	cause := errors.New("cause")

	err := fmt.Errorf("context: %w", outer.Wrap(inner.WithArgs("x").Wrap(cause)))

	assert.True(t, errors.Is(err, outer))
	assert.True(t, errors.Is(err, inner))
	assert.True(t, errors.Is(err, cause))

	var tr TranslatableError
	assert.True(t, errors.As(err, &tr))
	assert.Equal(t, "outer", tr.Key())
}

func TestBundleMessageProvider(t *testing.T) {
	bundle := NewEmptyBundle()
	assert.NoError(t, bundle.LoadFromString(language.English, `{"k": "value"}`))

	provider := NewBundleMessageProvider(bundle)
	assert.Equal(t, "value", provider.GetMessage("k"))
	assert.Equal(t, "missing", provider.GetMessage("missing"))
}

func TestSetDefaultMessageProvider(t *testing.T) {
	previous := getDefaultProvider()
	t.Cleanup(func() { SetDefaultMessageProvider(previous) })

	before := NewError("test.swap")
	SetDefaultMessageProvider(staticProvider{"test.swap": "swapped %s"})
	after := NewError("test.swap")

	assert.Equal(t, "swapped x", after.WithArgs("x").Error())
	assert.Equal(t, "test.swap", before.Error(), "errors created earlier keep their provider")
}
