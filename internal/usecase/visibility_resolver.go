package usecase

import "troca_medidores/internal/domain/entities"

// IsAskable reports whether a checklist question is currently meaningful,
// given the answers recorded so far. Visibility forms a DAG over predecessor
// answers, not a linear sequence: a question may require several predecessors
// at once.
//
// The resolver is the single source of truth for which answers count.
// Changing an earlier answer can orphan later ones; those stay in storage but
// are ignored everywhere (see EffectiveAnswer).
func IsAskable(rec entities.InspectionRecord, q entities.Question) bool {
	switch q {
	case entities.QuestionResidentPresent:
		return true
	case entities.QuestionClientAcceptsChange:
		return rec.ResidentPresent == entities.AnswerYes
	case entities.QuestionMeterSerialMatches:
		return IsAskable(rec, entities.QuestionClientAcceptsChange) &&
			rec.ClientAcceptsChange == entities.AnswerYes
	case entities.QuestionMeterDamaged:
		return IsAskable(rec, entities.QuestionMeterSerialMatches) &&
			rec.MeterSerialMatches == entities.AnswerYes
	case entities.QuestionHasGrateOrWeld:
		return IsAskable(rec, entities.QuestionMeterDamaged) &&
			rec.MeterDamaged == entities.AnswerNo
	case entities.QuestionGrateRemovable:
		return IsAskable(rec, entities.QuestionHasGrateOrWeld) &&
			rec.HasGrateOrWeld == entities.AnswerYes
	case entities.QuestionLeakOutsideZone:
		if !IsAskable(rec, entities.QuestionHasGrateOrWeld) {
			return false
		}
		if rec.HasGrateOrWeld == entities.AnswerNo {
			return true
		}
		return rec.HasGrateOrWeld == entities.AnswerYes &&
			rec.GrateRemovable == entities.AnswerYes
	case entities.QuestionValveLeak:
		return IsAskable(rec, entities.QuestionLeakOutsideZone) &&
			rec.LeakOutsideZone == entities.AnswerNo
	case entities.QuestionValveOperable:
		return IsAskable(rec, entities.QuestionValveLeak) &&
			rec.ValveLeak == entities.AnswerNo
	case entities.QuestionLeakPersistsAfterValveOp:
		return IsAskable(rec, entities.QuestionValveOperable) &&
			rec.ValveOperable == entities.AnswerYes
	}
	return false
}

// EffectiveAnswer is the answer the rest of the engine sees: the stored value
// when the question is askable, unanswered otherwise.
func EffectiveAnswer(rec entities.InspectionRecord, q entities.Question) entities.Answer {
	if !IsAskable(rec, q) {
		return entities.AnswerUnanswered
	}
	return rec.AnswerTo(q)
}

// AskableQuestions lists the currently askable questions in checklist order.
func AskableQuestions(rec entities.InspectionRecord) []entities.Question {
	out := make([]entities.Question, 0, len(entities.Questions))
	for _, q := range entities.Questions {
		if IsAskable(rec, q) {
			out = append(out, q)
		}
	}
	return out
}
