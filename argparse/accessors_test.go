package argparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListCopiesAreDecoupled(t *testing.T) {
	p, _ := newTestParser("")
	mustDefine(t, p.DefineList("-n", "--nums", ArgTypeInt, "numbers", false))
	if err := p.Parse([]string{"prog", "-n", "1", "2", "3"}); err != nil {
		t.Fatal(err)
	}

	first := p.GetIntList("-n")
	first[0] = 99
	second := p.GetIntList("--nums")
	if diff := cmp.Diff([]int{1, 2, 3}, second); diff != "" {
		t.Errorf("stored list changed through a copy (-want +got):\n%s", diff)
	}
	ReleaseIntList(&first)
	ReleaseIntList(&second)
}

func TestReleaseIsIdempotent(t *testing.T) {
	p, _ := newTestParser("")
	mustDefine(t, p.DefineList("-d", "", ArgTypeDouble, "doubles", false))
	mustDefine(t, p.DefineList("-s", "", ArgTypeString, "strings", false))
	if err := p.Parse([]string{"prog", "-d", "1.5", "-s", "a", "b"}); err != nil {
		t.Fatal(err)
	}

	d := p.GetDoubleList("-d")
	ReleaseDoubleList(&d)
	if d != nil {
		t.Error("ReleaseDoubleList did not clear the slice")
	}
	ReleaseDoubleList(&d)
	ReleaseDoubleList(nil)

	s := p.GetStringList("-s")
	n := p.GetListCount("-s")
	ReleaseStringList(&s, n)
	if s != nil {
		t.Error("ReleaseStringList did not clear the slice")
	}
	ReleaseStringList(&s, n)

	var empty []int
	ReleaseIntList(&empty)
}

func TestReleaseStringListClampsCount(t *testing.T) {
	s := []string{"a", "b"}
	ReleaseStringList(&s, 10)
	if s != nil {
		t.Error("slice not released")
	}
	s = []string{"a"}
	ReleaseStringList(&s, -1)
	if s != nil {
		t.Error("slice not released")
	}
}

func TestListAccessorErrors(t *testing.T) {
	p, _ := newTestParser("")
	mustDefine(t, p.Define("-i", "", ArgTypeInt, "int", false, nil))
	mustDefine(t, p.DefineList("-l", "", ArgTypeInt, "list", false))

	if got := p.GetIntList("-zz"); got != nil {
		t.Errorf("unknown list = %v", got)
	}
	if p.Errors().Category() != CategoryUnknownArgument || p.Errors().Argument() != "-zz" {
		t.Errorf("state after unknown name: %v", p.LastError())
	}

	if got := p.GetIntList("-i"); got != nil {
		t.Errorf("scalar as list = %v", got)
	}
	if p.Errors().Category() != CategoryType {
		t.Errorf("state after wrong type: %v", p.LastError())
	}

	if got := p.GetDoubleList("-l"); got != nil {
		t.Errorf("int list read as doubles = %v", got)
	}
	if p.Errors().Category() != CategoryType {
		t.Errorf("state after element mismatch: %v", p.LastError())
	}

	if got := p.GetIntList("-l"); got != nil {
		t.Errorf("unset list = %v", got)
	}
	if p.Errors().Occurred() {
		t.Errorf("empty list should not record an error: %v", p.LastError())
	}
}

func TestScalarAccessorsOnMismatch(t *testing.T) {
	p, _ := newTestParser("")
	mustDefine(t, p.Define("-s", "", ArgTypeString, "string", false, nil))
	mustDefine(t, p.Define("-b", "", ArgTypeBool, "bool", false, nil))

	if p.GetInt("-s") != 0 || p.GetDouble("-b") != 0 || p.GetBool("-s") {
		t.Error("type mismatch should yield zero values")
	}
	if _, ok := p.GetString("-s"); ok {
		t.Error("unset string without default reported present")
	}
	if _, ok := p.GetString("-missing"); ok {
		t.Error("unknown string reported present")
	}
	if p.GetListCount("-s") != 0 || p.GetListCount("-missing") != 0 {
		t.Error("GetListCount on non-lists should be 0")
	}
	if p.IsSet("-b") || p.IsSet("-missing") {
		t.Error("IsSet before parse")
	}
}

func TestGetListCount(t *testing.T) {
	p, _ := newTestParser("")
	mustDefine(t, p.DefineListEx("-v", "--vals", ArgTypeString, "values", false, '=', ','))
	if err := p.Parse([]string{"prog", "--vals=a,b", "-v", "c"}); err != nil {
		t.Fatal(err)
	}
	if n := p.GetListCount("-v"); n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	got := p.GetStringList("--vals")
	defer ReleaseStringList(&got, len(got))
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
