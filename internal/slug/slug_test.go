package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello-world", Normalize(" Hello_World "))
	assert.Equal(t, "foo-bar-baz", Normalize("#Foo  Bar   Baz"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("#"))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "a", Encode([]string{"a"}))
	assert.Equal(t, "a,b,c", Encode([]string{"a", "b", "c"}))
}

func TestDecodeNormalizesAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Decode("a,,b"))
	assert.Equal(t, []string{"alpha", "beta"}, Decode(" Alpha ,#Beta"))
	assert.Empty(t, Decode(""))
	assert.Empty(t, Decode(",,,"))
}

func TestDecodeKeepsFirstDuplicate(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Decode("a,b,A,a"))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tags := []string{"one", "two-words", "three"}
	assert.Equal(t, tags, Decode(Encode(tags)))
}
