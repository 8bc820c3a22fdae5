package entity

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDraw       Outcome = "draw"
)

// Status is derived from a Board and never stored. Winner is set only for OutcomeWon.
type Status struct {
	Outcome Outcome
	Winner  Mark
}

func Won(player Mark) Status {
	return Status{Outcome: OutcomeWon, Winner: player}
}

func (that Status) IsFinished() bool {
	return that.Outcome == OutcomeWon || that.Outcome == OutcomeDraw
}

func (that Status) IsInProgress() bool {
	return that.Outcome == OutcomeInProgress
}

func (that Status) String() string {
	if that.Outcome == OutcomeWon {
		return "won(" + string(that.Winner) + ")"
	}
	return string(that.Outcome)
}
