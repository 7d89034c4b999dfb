package entities

// DecisionOutcome is the coded result of evaluating the inspection checklist.
// Every code except OutcomeProceed is an early exit: the visit ends without
// installing the new meter and the code doubles as the suggested closure
// motive. The numeric values are a fixed catalog shared with the Order Store
// and must not be renumbered.

type DecisionOutcome int

const (
	OutcomeSecondVisit     DecisionOutcome = 1  // resident absent, first visit
	OutcomeRefused         DecisionOutcome = 2  // client refuses the change
	OutcomeSerialMismatch  DecisionOutcome = 3  // meter serial does not match the order
	OutcomeDamagedMeter    DecisionOutcome = 4  // meter visibly damaged
	OutcomeObstruction     DecisionOutcome = 5  // grate or weld that cannot be removed
	OutcomeLeakOutsideZone DecisionOutcome = 6  // leak outside the work zone
	OutcomeValveLeak       DecisionOutcome = 7  // leak at the service valve
	OutcomeProceed         DecisionOutcome = 8  // no early exit, continue to installation
	OutcomeNoResidentFinal DecisionOutcome = 9  // resident absent again on the second visit
	OutcomeValveInoperable DecisionOutcome = 10 // service valve cannot be operated
	OutcomeLeakPersists    DecisionOutcome = 11 // leak persists after closing the valve
)

// EarlyExit reports whether the outcome ends the visit before installation.
func (o DecisionOutcome) EarlyExit() bool {
	return o != OutcomeProceed
}
