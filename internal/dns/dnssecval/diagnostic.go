package dnssecval

// algoStrength ranks algorithms by the relative cryptographic strength
// order RFC 8624 recommends implementations prefer. It exists only to
// drive the downgrade-resistance signal below; it never participates in
// the Verdict itself. Algorithms absent from the map (including 0 and
// anything DefaultCryptoProvider does not implement) rank lowest.
var algoStrength = map[uint8]int{
	AlgRSAMD5:           1,
	AlgDSA:              2,
	AlgRSASHA1:          3,
	AlgDSANSEC3SHA1:     4,
	AlgRSASHA1NSEC3SHA1: 5,
	AlgRSASHA256:        6,
	AlgRSASHA512:        7,
	AlgECDSAP256SHA256:  8,
	AlgECDSAP384SHA384:  9,
	AlgED25519:          10,
}

// Diagnostic reports VerifyRRsetAgainstKeySet's result together with a
// non-authoritative downgrade-resistance signal for operators: whether a
// signature using a stronger algorithm than the one (if any) that
// actually verified was present in the RRset but failed. This never
// widens the three-valued Verdict and never gates it — a caller that
// ignores StrongerAlgorithmAvailable sees exactly the outcome
// VerifyRRsetAgainstKeySet would have given it.
type Diagnostic struct {
	Verdict                    Verdict
	Reason                     string
	StrongerAlgorithmAvailable bool
}

// DiagnoseRRsetAgainstKeySet runs the same search as
// VerifyRRsetAgainstKeySet and, only when the result is Secure,
// additionally flags whether some other signature using a stronger
// algorithm than the one that verified was present but failed. For a
// Bogus or Unchecked result the signal is always false — there is no
// winning signature for "stronger than" to be relative to.
func DiagnoseRRsetAgainstKeySet(env *Environment, rrset *RRset, keySet *RRset) Diagnostic {
	verdict, reason := VerifyRRsetAgainstKeySet(env, rrset, keySet)
	if rrset.RRSigCount == 0 || verdict != Secure {
		// The downgrade signal only means something relative to a
		// signature that actually won; without one, "stronger than
		// what won" has no referent.
		return Diagnostic{Verdict: verdict, Reason: reason}
	}

	wonStrength := -1
	bestFailedStrength := -1
	for j := 0; j < rrset.RRSigCount; j++ {
		sigIdx := rrset.sigIndex(j)
		if sigIdx < 0 {
			continue
		}
		sigRdata := rrset.RData(sigIdx)
		if len(sigRdata) < rrsigFixedLen+1 {
			continue
		}
		strength := algoStrength[rrsigAlgorithm(sigRdata)]

		if v, _ := VerifySigAgainstKeySet(env, rrset, keySet, sigIdx); v == Secure {
			if strength > wonStrength {
				wonStrength = strength
			}
			continue
		}
		if strength > bestFailedStrength {
			bestFailedStrength = strength
		}
	}

	return Diagnostic{
		Verdict:                    verdict,
		Reason:                     reason,
		StrongerAlgorithmAvailable: bestFailedStrength > wonStrength,
	}
}
