package entities

import "testing"

func TestLeadStatus_CanTransitionTo(t *testing.T) {
	if !LeadStatusNew.CanTransitionTo(LeadStatusContacted) {
		t.Fatalf("new -> contacted should be allowed")
	}
	if LeadStatusConverted.CanTransitionTo(LeadStatusNew) {
		t.Fatalf("converted is terminal")
	}
	if !LeadStatusLost.CanTransitionTo(LeadStatusContacted) {
		t.Fatalf("lost leads can be reopened")
	}
	if LeadStatusNew.CanTransitionTo(LeadStatusNew) {
		t.Fatalf("self transition should not be allowed")
	}
	if LeadStatus("archived").IsValid() {
		t.Fatalf("unexpected valid status")
	}
}
