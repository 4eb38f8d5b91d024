package saga

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SagaSuite struct {
	suite.Suite
	calls    []string
	failures []RollbackFailure
	runner   *Runner
}

func TestSagaSuite(t *testing.T) {
	suite.Run(t, new(SagaSuite))
}

func (s *SagaSuite) SetupTest() {
	s.calls = nil
	s.failures = nil
	s.runner = New("provision",
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		OnRollbackFailure(func(_ context.Context, f RollbackFailure) {
			s.failures = append(s.failures, f)
		}),
	)
}

func (s *SagaSuite) step(name string, actionErr, compErr error) Step {
	return Step{
		Name: name,
		Action: func(context.Context) error {
			s.calls = append(s.calls, "do:"+name)
			return actionErr
		},
		Compensate: func(context.Context) error {
			s.calls = append(s.calls, "undo:"+name)
			return compErr
		},
	}
}

func (s *SagaSuite) TestAllStepsSucceed() {
	err := s.runner.Run(context.Background(), s.step("a", nil, nil), s.step("b", nil, nil))

	s.Require().NoError(err)
	s.Equal([]string{"do:a", "do:b"}, s.calls)
}

func (s *SagaSuite) TestFailureCompensatesCompletedStepsInReverse() {
	boom := errors.New("associations insert failed")

	err := s.runner.Run(context.Background(),
		s.step("credential", nil, nil),
		s.step("center", nil, nil),
		s.step("profile", nil, nil),
		s.step("associations", boom, nil),
	)

	s.Require().ErrorIs(err, boom)
	s.Equal([]string{
		"do:credential", "do:center", "do:profile", "do:associations",
		"undo:profile", "undo:center", "undo:credential",
	}, s.calls)
	s.Empty(s.failures)
}

func (s *SagaSuite) TestFirstStepFailureUndoesNothing() {
	boom := errors.New("email taken")

	err := s.runner.Run(context.Background(), s.step("credential", boom, nil), s.step("profile", nil, nil))

	s.Require().ErrorIs(err, boom)
	s.Equal([]string{"do:credential"}, s.calls)
}

func (s *SagaSuite) TestRollbackFailureDoesNotMaskPrimaryError() {
	primary := errors.New("profile insert failed")
	undoErr := errors.New("identity provider unreachable")

	err := s.runner.Run(context.Background(),
		s.step("credential", nil, undoErr),
		s.step("center", nil, nil),
		s.step("profile", primary, nil),
	)

	s.Require().ErrorIs(err, primary)
	s.Equal([]string{"do:credential", "do:center", "do:profile", "undo:center", "undo:credential"}, s.calls)
	s.Require().Len(s.failures, 1)
	s.Equal("credential", s.failures[0].Step)
	s.Equal("provision", s.failures[0].Saga)
	s.ErrorIs(s.failures[0].Err, undoErr)
	s.ErrorIs(s.failures[0].Cause, primary)
}

func (s *SagaSuite) TestCompensationRunsAfterCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	var undoCtxErr error

	err := s.runner.Run(ctx,
		Step{
			Name:   "credential",
			Action: func(context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				undoCtxErr = ctx.Err()
				return nil
			},
		},
		Step{
			Name: "profile",
			Action: func(context.Context) error {
				cancel()
				return context.Canceled
			},
		},
	)

	s.Require().ErrorIs(err, context.Canceled)
	s.NoError(undoCtxErr)
}

func (s *SagaSuite) TestNilCompensationIsSkipped() {
	boom := errors.New("fail")
	err := s.runner.Run(context.Background(),
		Step{Name: "lookup", Action: func(context.Context) error { s.calls = append(s.calls, "do:lookup"); return nil }},
		s.step("write", boom, nil),
	)
	s.Require().ErrorIs(err, boom)
	s.Equal([]string{"do:lookup", "do:write"}, s.calls)
}
