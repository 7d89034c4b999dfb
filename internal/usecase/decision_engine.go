package usecase

import "troca_medidores/internal/domain/entities"

// Suggest evaluates the inspection checklist and returns the closure-motive
// suggestion, or OutcomeProceed when the visit may continue to installation.
//
// Rules are evaluated in order and the first match wins; later rules are
// never reached once an earlier one matches. The order is part of the
// contract with the Order Store's motive catalog and must not be rearranged.
//
// Answers to questions the resolver currently hides are treated as
// unanswered, so stale answers left behind by editing an earlier question
// cannot trigger a rule.
func Suggest(rec entities.InspectionRecord) entities.DecisionOutcome {
	ans := func(q entities.Question) entities.Answer {
		return EffectiveAnswer(rec, q)
	}

	switch {
	// The same "resident absent" answer means two different things: on the
	// first visit it schedules a return, on the second it closes the order
	// for good. The first-visit timestamp is the discriminator.
	case ans(entities.QuestionResidentPresent) == entities.AnswerNo && rec.FirstVisitAt == nil:
		return entities.OutcomeSecondVisit
	case ans(entities.QuestionResidentPresent) == entities.AnswerNo:
		return entities.OutcomeNoResidentFinal
	case ans(entities.QuestionClientAcceptsChange) == entities.AnswerNo:
		return entities.OutcomeRefused
	case ans(entities.QuestionMeterSerialMatches) == entities.AnswerNo:
		return entities.OutcomeSerialMismatch
	case ans(entities.QuestionMeterDamaged) == entities.AnswerYes:
		return entities.OutcomeDamagedMeter
	case ans(entities.QuestionHasGrateOrWeld) == entities.AnswerYes &&
		ans(entities.QuestionGrateRemovable) == entities.AnswerNo:
		return entities.OutcomeObstruction
	case ans(entities.QuestionValveLeak) == entities.AnswerYes:
		return entities.OutcomeValveLeak
	case ans(entities.QuestionValveOperable) == entities.AnswerNo:
		return entities.OutcomeValveInoperable
	case ans(entities.QuestionLeakPersistsAfterValveOp) == entities.AnswerYes:
		return entities.OutcomeLeakPersists
	case ans(entities.QuestionLeakOutsideZone) == entities.AnswerYes:
		return entities.OutcomeLeakOutsideZone
	}
	return entities.OutcomeProceed
}
