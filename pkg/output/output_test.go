package output

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	require.Equal(t, "OUTPUT :Fresh Avacado:", FromText("Fresh Avacado").Render())
}

func TestPushText_Twice(t *testing.T) {
	o := New().PushText("Fresh Avacado").PushText("Fresh Avacado")
	require.Equal(t, "OUTPUT :Fresh Avacado: :Fresh Avacado:", o.Render())
}

func TestMixedPush(t *testing.T) {
	o := New().PushText("Fresh Avacado")
	o = PushNumeric(o, 13)
	o = o.PushText("Fresh Avacado")
	o = PushNumeric(o, 1.1)

	require.Equal(t, "OUTPUT :Fresh Avacado: 13 :Fresh Avacado: 1.1", o.Render())
}

func TestEmpty(t *testing.T) {
	require.Equal(t, "OUTPUT", New().Render())

	var zero Output
	require.Equal(t, "OUTPUT", zero.Render())
	require.True(t, zero.IsEmpty())
	require.True(t, zero.Equal(New()))
}

func TestPushNumeric(t *testing.T) {
	type meters float64
	type ratio float32
	type delta int16
	type count uint8

	tests := []struct {
		name string
		got  Output
		want string
	}{
		{name: "int", got: PushNumeric(New(), 13), want: "OUTPUT 13"},
		{name: "negative int", got: PushNumeric(New(), -7), want: "OUTPUT -7"},
		{name: "int8 min", got: PushNumeric(New(), int8(-128)), want: "OUTPUT -128"},
		{name: "uint64 max", got: PushNumeric(New(), uint64(18446744073709551615)), want: "OUTPUT 18446744073709551615"},
		{name: "float64", got: PushNumeric(New(), 1.1), want: "OUTPUT 1.1"},
		{name: "whole float", got: PushNumeric(New(), 2.0), want: "OUTPUT 2"},
		{name: "negative float", got: PushNumeric(New(), -0.25), want: "OUTPUT -0.25"},
		{name: "float32", got: PushNumeric(New(), float32(1.1)), want: "OUTPUT 1.1"},
		{name: "large float", got: PushNumeric(New(), 1e21), want: "OUTPUT 1000000000000000000000"},
		{name: "named float", got: PushNumeric(New(), meters(3.5)), want: "OUTPUT 3.5"},
		{name: "named float32", got: PushNumeric(New(), ratio(1.1)), want: "OUTPUT 1.1"},
		{name: "named int", got: PushNumeric(New(), delta(-12)), want: "OUTPUT -12"},
		{name: "named uint", got: PushNumeric(New(), count(9)), want: "OUTPUT 9"},
		{name: "uintptr", got: PushNumeric(New(), uintptr(64)), want: "OUTPUT 64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got.Render())
		})
	}
}

func TestConcreteNumericMethods(t *testing.T) {
	o := New().PushInt(-3).PushUint(4).PushFloat(0.5)
	require.Equal(t, "OUTPUT -3 4 0.5", o.Render())
	require.Equal(t, o, PushNumeric(PushNumeric(PushNumeric(New(), -3), uint(4)), 0.5))
}

func TestParse_NeverFails(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "OUTPUT ::"},
		{input: "OUTPUT", want: "OUTPUT :OUTPUT:"},
		{input: "a:b", want: "OUTPUT :a:b:"},
		{input: ":", want: "OUTPUT :::"},
		{input: "  ", want: "OUTPUT :  :"},
		{input: "line\nbreak", want: "OUTPUT :line\nbreak:"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			o, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, o.Render())
			require.Equal(t, FromText(tt.input), o)
		})
	}
}

func TestPush_LeavesReceiverUnchanged(t *testing.T) {
	base := New().PushText("a")
	withText := base.PushText("b")
	withNum := PushNumeric(base, 1)

	require.Equal(t, "OUTPUT :a:", base.Render())
	require.Equal(t, "OUTPUT :a: :b:", withText.Render())
	require.Equal(t, "OUTPUT :a: 1", withNum.Render())
}

func TestRender_Idempotent(t *testing.T) {
	o := PushNumeric(FromText("x"), 42)
	require.Equal(t, o.Render(), o.Render())
	require.Equal(t, o.Render(), o.String())
	require.Equal(t, o.Render(), fmt.Sprint(o))
}

func TestRender_OrderPreserved(t *testing.T) {
	require.Equal(t, "OUTPUT :a: :b:", New().PushText("a").PushText("b").Render())
	require.Equal(t, "OUTPUT :b: :a:", New().PushText("b").PushText("a").Render())
}

func TestRender_MarkerAndTrim(t *testing.T) {
	outputs := []Output{
		New(),
		FromText(""),
		FromText("OUTPUT"),
		FromText("trailing "),
		PushNumeric(New(), 0),
		PushNumeric(FromText("x"), 1.5).PushText("y"),
	}

	for _, o := range outputs {
		line := o.Render()
		require.True(t, strings.HasPrefix(line, Marker), line)
		rest := strings.TrimPrefix(line, Marker)
		require.True(t, rest == "" || strings.HasPrefix(rest, " "), line)
		require.False(t, unicode.IsSpace(rune(line[len(line)-1])), "trailing whitespace in %q", line)
	}

	// The marker is only added once, however many fragments there are.
	o := New()
	for i := 0; i < 5; i++ {
		o = PushNumeric(o, i)
	}
	require.Equal(t, 1, strings.Count(o.Render(), Marker))
}

func TestMarshalText(t *testing.T) {
	b, err := FromText("x").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "OUTPUT :x:", string(b))
}

func TestEqualityAndOrdering(t *testing.T) {
	a := PushNumeric(New().PushText("Fresh Avacado"), 13)
	b := PushNumeric(FromText("Fresh Avacado"), 13)

	require.True(t, a == b)
	require.True(t, a.Equal(b))
	require.Equal(t, 0, Compare(a, b))
	require.Equal(t, a.Render(), b.Render())

	c := FromText("Fresh Avacado")
	require.False(t, a.Equal(c))
	require.NotEqual(t, 0, Compare(a, c))

	seen := map[Output]int{a: 1}
	seen[b]++
	require.Len(t, seen, 1)
	require.Equal(t, 2, seen[a])

	outs := []Output{FromText("b"), PushNumeric(New(), 2), FromText("a"), New(), PushNumeric(New(), 10)}
	sort.Slice(outs, func(i, j int) bool { return outs[i].Less(outs[j]) })

	var rendered []string
	for _, o := range outs {
		rendered = append(rendered, o.Render())
	}
	require.Equal(t, []string{"OUTPUT", "OUTPUT 10", "OUTPUT 2", "OUTPUT :a:", "OUTPUT :b:"}, rendered)
	require.True(t, sort.StringsAreSorted(rendered))
}

func TestCompare_ControlBytes(t *testing.T) {
	plain := FromText("a")
	tabbed := FromText("a:\tb")

	require.Equal(t, 1, Compare(plain, tabbed))
	require.True(t, tabbed.Less(plain))
	require.Equal(t, -1, strings.Compare(plain.Render(), tabbed.Render()))
}

func TestConcurrentReaders(t *testing.T) {
	shared := PushNumeric(FromText("shared"), 7)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = PushNumeric(shared, i).Render()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.Equal(t, fmt.Sprintf("OUTPUT :shared: 7 %d", i), r)
	}
	require.Equal(t, "OUTPUT :shared: 7", shared.Render())
}
