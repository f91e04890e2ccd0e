package dbotjson

import (
	"encoding/json"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

// benchFixture is large enough to exercise both the materialising
// decode path and the allocation-free skip path meaningfully; it is
// reused across every benchmark below so results are comparable.
const benchFixture = `{
	"users": [
		{"id": 1, "name": "Ada Lovelace", "active": true, "score": 98.5},
		{"id": 2, "name": "Grace Hopper", "active": true, "score": 97.2},
		{"id": 3, "name": "Alan Turing", "active": false, "score": 99.9},
		{"id": 4, "name": "Margaret Hamilton", "active": true, "score": 95.0}
	],
	"meta": {"total": 4, "page": 1, "tags": ["eng", "history", "computing"]}
}`

func BenchmarkDecodeFull(b *testing.B) {
	buf := []byte(benchFixture)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeFullOrdered(b *testing.B) {
	buf := []byte(benchFixture)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(buf, WithOrderedObjects()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetDeepScalar(b *testing.B) {
	buf := []byte(benchFixture)
	path, err := ParsePathString("users[3].name")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Get(path, buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeEncodingJSON(b *testing.B) {
	buf := []byte(benchFixture)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := json.Unmarshal(buf, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeJSONIterator(b *testing.B) {
	buf := []byte(benchFixture)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := jsoniter.Unmarshal(buf, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeSonic(b *testing.B) {
	buf := []byte(benchFixture)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := sonic.Unmarshal(buf, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetJSONParser(b *testing.B) {
	buf := []byte(benchFixture)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		usersVal, _, _, err := jsonparser.Get(buf, "users")
		if err != nil {
			b.Fatal(err)
		}
		var last string
		_, err = jsonparser.ArrayEach(usersVal, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			last, _ = jsonparser.GetString(value, "name")
		})
		if err != nil {
			b.Fatal(err)
		}
		_ = last
	}
}
