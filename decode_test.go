package dbotjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalars(t *testing.T) {
	cases := []struct {
		name string
		body string
		kind Kind
	}{
		{"null", "null", Null},
		{"true", "true", Bool},
		{"false", "false", Bool},
		{"int", "42", Integer},
		{"negInt", "-42", Integer},
		{"zero", "0", Integer},
		{"float", "3.14", Float},
		{"expFloat", "1e10", Float},
		{"negExpFloat", "-1.5e-3", Float},
		{"string", `"hello"`, String},
		{"array", "[1,2,3]", Array},
		{"object", `{"a":1}`, Object},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Decode([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestDecodeIntegerAndFloatValues(t *testing.T) {
	v, err := Decode([]byte("1234"))
	require.NoError(t, err)
	n, err := v.AsInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 1234, n)

	v, err = Decode([]byte("-0.5"))
	require.NoError(t, err)
	f, err := v.AsFloat64()
	require.NoError(t, err)
	assert.InDelta(t, -0.5, f, 1e-9)
}

func TestDecodeLeadingZeroRejected(t *testing.T) {
	_, err := Decode([]byte("0123"))
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Pos)
}

func TestDecodeStringEscapes(t *testing.T) {
	v, err := Decode([]byte(`"a\nb\tcA"`))
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc\x41", s)
}

func TestDecodeSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, written as its \u surrogate pair.
	body := "\"\\uD83D\\uDE00\""
	v, err := Decode([]byte(body))
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", s)
}

func TestDecodeLoneHighSurrogateTolerated(t *testing.T) {
	v, err := Decode([]byte(`"\ud800x"`))
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "?x", s)
}

func TestDecodeNestedContainers(t *testing.T) {
	body := `{"a":[1,2,{"b":true,"c":null}],"d":"e"}`
	v, err := Decode([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, Object, v.Kind())

	arr := v.Key("a")
	require.Equal(t, Array, arr.Kind())
	assert.Equal(t, 3, arr.Len())

	inner := arr.Index(2)
	b, err := inner.Key("b").AsBool()
	require.NoError(t, err)
	assert.True(t, b)
	assert.True(t, inner.Key("c").IsNull())

	d, err := v.Key("d").AsString()
	require.NoError(t, err)
	assert.Equal(t, "e", d)
}

func TestDecodeOrderedObjectsPreserveDuplicates(t *testing.T) {
	body := `{"a":1,"b":2,"a":3}`
	v, err := Decode([]byte(body), WithOrderedObjects())
	require.NoError(t, err)

	pairs, err := v.AsPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, "a", pairs[0].Key)
	assert.Equal(t, "b", pairs[1].Key)
	assert.Equal(t, "a", pairs[2].Key)

	// Key() resolves duplicates last-occurrence-wins, same as the
	// default map representation would.
	n, err := v.Key("a").AsInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestDecodeDefaultObjectsLastKeyWins(t *testing.T) {
	v, err := Decode([]byte(`{"a":1,"a":2}`))
	require.NoError(t, err)
	n, err := v.Key("a").AsInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestDecodeUTF8FastScanMatchesDefault(t *testing.T) {
	body := `"café 東京 plain"`
	want, err := Decode([]byte(body))
	require.NoError(t, err)
	got, err := Decode([]byte(body), WithUTF8FastScan())
	require.NoError(t, err)

	ws, _ := want.AsString()
	gs, _ := got.AsString()
	assert.Equal(t, ws, gs)
}

func TestDecodeTrailingContentLenientByDefault(t *testing.T) {
	v, err := Decode([]byte("42   garbage"))
	require.NoError(t, err)
	n, _ := v.AsInt64()
	assert.EqualValues(t, 42, n)
}

func TestDecodeTrailingContentStrict(t *testing.T) {
	_, err := Decode([]byte("42 garbage"), WithStrictTrailing())
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestDecodeMalformedInputs(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unterminatedObject", `{"a":`},
		{"unterminatedString", `"abc`},
		{"trailingComma", `[1,2,]`},
		{"badLiteral", `tru`},
		{"emptyInput", ``},
		{"bareMinus", `-`},
		{"barePoint", `1.`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.body))
			require.Error(t, err)
		})
	}
}

func TestDecodeEmptyContainers(t *testing.T) {
	v, err := Decode([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())

	v, err = Decode([]byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}
