package charkit_test

import (
	"fmt"
	"slices"
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"go.llib.dev/decodedchar/pkg/charkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func randomScalar(t *testcase.T) rune {
	for {
		r := rune(t.Random.IntBetween(0, utf8.MaxRune))
		if utf8.ValidRune(r) {
			return r
		}
	}
}

func ExampleNew() {
	c := charkit.New('é', 2)
	fmt.Println(c, c.Len())
	// Output: é 2
}

func ExampleFromUTF16() {
	fmt.Println(charkit.FromUTF16('😀').Len(), charkit.FromUTF8('😀').Len())
	// Output: 2 4
}

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)
	s.NoSideEffect()

	r := testcase.Let(s, func(t *testcase.T) rune {
		return randomScalar(t)
	})
	n := testcase.Let(s, func(t *testcase.T) int {
		return t.Random.IntBetween(0, 1024)
	})
	subject := testcase.Let(s, func(t *testcase.T) charkit.Char {
		return charkit.New(r.Get(t), n.Get(t))
	})

	s.Then("it holds the character", func(t *testcase.T) {
		t.Must.Equal(r.Get(t), subject.Get(t).Rune())
		t.Must.Equal(r.Get(t), subject.Get(t).IntoRune())
	})

	s.Then("it holds the given length without checking it", func(t *testcase.T) {
		t.Must.Equal(n.Get(t), subject.Get(t).Len())
		t.Must.Equal(n.Get(t), subject.Get(t).IntoLen())
	})

	s.Then("it converts into the scalar value", func(t *testcase.T) {
		t.Must.Equal(uint32(r.Get(t)), subject.Get(t).Uint32())
	})

	s.Then("it renders as the character", func(t *testcase.T) {
		t.Must.Equal(string(r.Get(t)), subject.Get(t).String())
	})

	s.Then("it equals its character regardless of the length", func(t *testcase.T) {
		t.Must.True(subject.Get(t).Equal(r.Get(t)))
		t.Must.True(charkit.New(r.Get(t), n.Get(t)+1).Equal(r.Get(t)))
		t.Must.Equal(0, subject.Get(t).Compare(r.Get(t)))
	})

	s.Then("it does not equal another character", func(t *testcase.T) {
		t.Must.False(subject.Get(t).Equal(r.Get(t) + 1))
		t.Must.Equal(-1, subject.Get(t).Compare(r.Get(t)+1))
		t.Must.Equal(1, subject.Get(t).Compare(r.Get(t)-1))
	})
}

func TestFromUTF8(t *testing.T) {
	s := testcase.NewSpec(t)
	s.NoSideEffect()

	s.Test("the length is the UTF-8 byte length", func(t *testcase.T) {
		r := randomScalar(t)
		c := charkit.FromUTF8(r)
		t.Must.Equal(len(string(r)), c.Len())
		t.Must.Equal(r, c.IntoRune())
	})

	s.Test("boundaries", func(t *testcase.T) {
		for r, exp := range map[rune]int{
			0x00:     1,
			0x7F:     1,
			0x80:     2,
			0x7FF:    2,
			0x800:    3,
			0xFFFF:   3,
			0x10000:  4,
			0x10FFFF: 4,
		} {
			t.Must.Equal(exp, charkit.FromUTF8(r).Len(), assert.MessageF("%U", r))
		}
	})

	s.Test("invalid runes take the length of their replacement", func(t *testcase.T) {
		for _, r := range []rune{-1, 0xD800, 0xDFFF, utf8.MaxRune + 1} {
			t.Must.Equal(3, charkit.FromUTF8(r).Len())
		}
	})
}

func TestFromUTF16(t *testing.T) {
	s := testcase.NewSpec(t)
	s.NoSideEffect()

	s.Test("the length is the UTF-16 code unit length", func(t *testcase.T) {
		r := randomScalar(t)
		c := charkit.FromUTF16(r)
		t.Must.Equal(len(utf16.Encode([]rune{r})), c.Len())
		t.Must.Equal(r, c.IntoRune())
	})

	s.Test("boundaries", func(t *testcase.T) {
		t.Must.Equal(1, charkit.FromUTF16(0xFFFF).Len())
		t.Must.Equal(2, charkit.FromUTF16(0x10000).Len())
		t.Must.Equal(2, charkit.FromUTF16('😀').Len())
	})

	s.Test("invalid runes take the length of their replacement", func(t *testcase.T) {
		for _, r := range []rune{-1, 0xD800, utf8.MaxRune + 1} {
			t.Must.Equal(1, charkit.FromUTF16(r).Len())
		}
	})
}

func TestCompare(t *testing.T) {
	cs := []charkit.Char{charkit.FromUTF8('中'), charkit.FromUTF16('a'), charkit.New('é', 9)}
	slices.SortFunc(cs, charkit.Compare)

	var got []rune
	for _, c := range cs {
		got = append(got, c.Rune())
	}
	assert.Equal(t, []rune{'a', 'é', '中'}, got)
	assert.Equal(t, 0, charkit.Compare(charkit.New('x', 1), charkit.New('x', 2)))
}

func TestLookup(t *testing.T) {
	names := map[rune]string{'x': "ex", '😀': "grinning face"}

	v, ok := charkit.Lookup(names, charkit.New('x', 42))
	assert.True(t, ok)
	assert.Equal(t, "ex", v)

	v, ok = charkit.Lookup(names, charkit.FromUTF16('😀'))
	assert.True(t, ok)
	assert.Equal(t, "grinning face", v)

	_, ok = charkit.Lookup(names, charkit.FromUTF8('y'))
	assert.False(t, ok)
}
