package utils

import "testing"

func TestApplyIsVisibleBeforeCommit(t *testing.T) {
	cell := NewOptimistic(10)
	tok := cell.Apply(11)

	if got := cell.Get(); got != 11 {
		t.Errorf("in-flight value = %d, want tentative 11", got)
	}

	tok.Commit(12)
	if got := cell.Get(); got != 12 {
		t.Errorf("after commit = %d, want remote 12", got)
	}
}

func TestRevertRestoresDisplacedValue(t *testing.T) {
	cell := NewOptimistic("liked")
	tok := cell.Apply("unliked")
	tok.Revert()

	if got := cell.Get(); got != "liked" {
		t.Errorf("after revert = %q, want the pre-apply value", got)
	}
}

func TestTokensRememberTheirOwnPrev(t *testing.T) {
	cell := NewOptimistic(1)
	first := cell.Apply(2)
	second := cell.Apply(3)

	second.Revert()
	if got := cell.Get(); got != 2 {
		t.Errorf("after inner revert = %d, want 2", got)
	}
	first.Revert()
	if got := cell.Get(); got != 1 {
		t.Errorf("after outer revert = %d, want 1", got)
	}
}
