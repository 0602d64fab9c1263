package union

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type numOrWord struct {
	n    int
	word string
}

var errNotWord = errors.New("not a word")

func number(raw string) (numOrWord, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return numOrWord{}, err
	}
	return numOrWord{n: n}, nil
}

func word(raw string) (numOrWord, error) {
	if raw == "" {
		return numOrWord{}, errNotWord
	}
	return numOrWord{word: raw}, nil
}

func TestResolveOrder(t *testing.T) {
	numFirst := Must("num-first", Candidate[numOrWord]{"number", number}, Candidate[numOrWord]{"word", word})
	wordFirst := Must("word-first", Candidate[numOrWord]{"word", word}, Candidate[numOrWord]{"number", number})

	v, shape, err := numFirst.Resolve("5")
	if err != nil {
		t.Fatal(err)
	}
	if shape != "number" || v.n != 5 {
		t.Errorf("got %s %+v", shape, v)
	}
	v, shape, err = wordFirst.Resolve("5")
	if err != nil {
		t.Fatal(err)
	}
	if shape != "word" || v.word != "5" {
		t.Errorf("got %s %+v", shape, v)
	}
}

func TestUnresolved(t *testing.T) {
	l := Must("num-or-word", Candidate[numOrWord]{"number", number}, Candidate[numOrWord]{"word", word})
	_, _, err := l.Resolve("")
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("got %v want %v", err, ErrUnresolved)
	}
	if !errors.Is(err, errNotWord) {
		t.Errorf("causes not reachable: %v", err)
	}
	var ue *UnresolvedError
	if !errors.As(err, &ue) {
		t.Fatalf("got %T", err)
	}
	if diff := cmp.Diff([]string{"number", "word"}, ue.Tried); diff != "" {
		t.Errorf("tried (-want +got):\n%s", diff)
	}
	if got, want := err.Error(), `num-or-word "": not one of number, word`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New[int]("empty"); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("got %v want %v", err, ErrNoCandidates)
	}
	_, err := New("dup", Candidate[numOrWord]{"word", word}, Candidate[numOrWord]{"word", word})
	if !errors.Is(err, ErrDuplicateShape) {
		t.Errorf("got %v want %v", err, ErrDuplicateShape)
	}
	if _, err := New("nil", Candidate[numOrWord]{Shape: "x"}); err == nil {
		t.Error("expected error for missing parser")
	}
}
