package model

// JobStatus is the workflow status of a tracked job.
type JobStatus string

// All workflow statuses a job can be in.
const (
	StatusWishlist  JobStatus = "WISHLIST"
	StatusApplied   JobStatus = "APPLIED"
	StatusInterview JobStatus = "INTERVIEW"
	StatusOffer     JobStatus = "OFFER"
	StatusRejected  JobStatus = "REJECTED"
	StatusDiscarded JobStatus = "DISCARDED"
	StatusActive    JobStatus = "ACTIVE"
	StatusAlpha     JobStatus = "ALPHA"
	StatusPrimary   JobStatus = "PRIMARY"
	StatusIdea      JobStatus = "IDEA"
	StatusPotential JobStatus = "POTENTIAL"
)

// JobType is the employment type of a job.
type JobType string

// All employment types.
const (
	TypeFullTime   JobType = "FULL_TIME"
	TypePartTime   JobType = "PART_TIME"
	TypeContract   JobType = "CONTRACT"
	TypeInternship JobType = "INTERNSHIP"
	TypeFreelance  JobType = "FREELANCE"
	TypeOpenSource JobType = "OPEN_SOURCE"
	TypeProposal   JobType = "PROPOSAL"
)

// Priority is how urgently a job should be pursued.
type Priority string

// All priorities.
const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// AllStatuses lists every valid JobStatus, in workflow order.
var AllStatuses = []JobStatus{
	StatusWishlist, StatusApplied, StatusInterview, StatusOffer,
	StatusRejected, StatusDiscarded, StatusActive, StatusAlpha,
	StatusPrimary, StatusIdea, StatusPotential,
}

// AllTypes lists every valid JobType.
var AllTypes = []JobType{
	TypeFullTime, TypePartTime, TypeContract, TypeInternship,
	TypeFreelance, TypeOpenSource, TypeProposal,
}

// AllPriorities lists every valid Priority.
var AllPriorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether s is a known status.
func (s JobStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}
