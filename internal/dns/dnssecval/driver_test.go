package dnssecval

import "testing"

// TestVerifyRRsetAgainstKeySetSecure checks the top-level entry point
// end to end against a freshly signed scenario.
func TestVerifyRRsetAgainstKeySetSecure(t *testing.T) {
	s := buildSignedScenario(t)
	v, reason := VerifyRRsetAgainstKeySet(s.env, s.rrset, s.keySet)
	if v != Secure {
		t.Fatalf("VerifyRRsetAgainstKeySet() = (%v, %q), want Secure", v, reason)
	}
}

// TestVerifyRRsetAgainstKeySetNoSignatures checks that an RRset with no
// RRSIGs at all is Bogus, never Unchecked — an unsigned zone is a
// validation failure, not an internal error.
func TestVerifyRRsetAgainstKeySetNoSignatures(t *testing.T) {
	s := buildSignedScenario(t)
	s.rrset.RRSigCount = 0
	v, reason := VerifyRRsetAgainstKeySet(s.env, s.rrset, s.keySet)
	if v != Bogus || reason != "no signatures" {
		t.Errorf("VerifyRRsetAgainstKeySet(no rrsigs) = (%v, %q), want (Bogus, \"no signatures\")", v, reason)
	}
}

// TestVerifySigAgainstKeySetTriesEveryMatchingKey builds a key set with
// a decoy key sharing neither algorithm nor key tag first and the real
// signing key last; VerifySigAgainstKeySet must skip the decoy, find the
// real key and return Secure.
func TestVerifySigAgainstKeySetTriesEveryMatchingKey(t *testing.T) {
	s := buildSignedScenario(t)
	decoy := entry(dnskeyRDATA(257, AlgRSASHA256, []byte{1, 2, 3, 4, 5}))
	keySetWithDecoy := &RRset{
		Owner:  s.keySet.Owner,
		Count:  2,
		RRData: [][]byte{decoy, s.keySet.RRData[0]},
	}

	sigIdx := s.rrset.sigIndex(0)
	v, reason := VerifySigAgainstKeySet(s.env, s.rrset, keySetWithDecoy, sigIdx)
	if v != Secure {
		t.Fatalf("VerifySigAgainstKeySet() = (%v, %q), want Secure", v, reason)
	}
}

// TestVerifySigAgainstKeySetNoAppropriateKey checks the distinct
// "no appropriate key" reason when nothing in the key set even matches
// algorithm+key tag.
func TestVerifySigAgainstKeySetNoAppropriateKey(t *testing.T) {
	s := buildSignedScenario(t)
	unrelated := &RRset{
		Owner:  s.keySet.Owner,
		Count:  1,
		RRData: [][]byte{entry(dnskeyRDATA(257, AlgRSASHA256, []byte{9, 9, 9, 9, 9}))},
	}
	sigIdx := s.rrset.sigIndex(0)
	v, reason := VerifySigAgainstKeySet(s.env, s.rrset, unrelated, sigIdx)
	if v != Bogus || reason != "no appropriate key" {
		t.Errorf("VerifySigAgainstKeySet(unrelated keyset) = (%v, %q), want (Bogus, \"no appropriate key\")", v, reason)
	}
}

// TestVerifyKeyAgainstRRset checks the single-key-many-signatures
// variant against the common scenario's single RRSIG.
func TestVerifyKeyAgainstRRset(t *testing.T) {
	s := buildSignedScenario(t)
	v, reason := VerifyKeyAgainstRRset(s.env, s.rrset, s.keySet, 0)
	if v != Secure {
		t.Fatalf("VerifyKeyAgainstRRset() = (%v, %q), want Secure", v, reason)
	}

	s.rrset.RRSigCount = 0
	v, reason = VerifyKeyAgainstRRset(s.env, s.rrset, s.keySet, 0)
	if v != Bogus || reason != "no signatures" {
		t.Errorf("VerifyKeyAgainstRRset(no rrsigs) = (%v, %q), want (Bogus, \"no signatures\")", v, reason)
	}
}

// TestVerifySigAgainstKeyDirect checks the single-pair public wrapper
// delegates correctly.
func TestVerifySigAgainstKeyDirect(t *testing.T) {
	s := buildSignedScenario(t)
	v, _ := VerifySigAgainstKey(s.env, s.rrset, s.keySet, 0, 1)
	if v != Secure {
		t.Errorf("VerifySigAgainstKey() = %v, want Secure", v)
	}
}
