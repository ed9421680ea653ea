package calendars

import "context"

type API interface {
	ManualRanges(ctx context.Context, user string) ([]ManualRange, error)
	RepeatingRanges(ctx context.Context, user string) ([]RepeatingRange, error)
	ImportedRanges(ctx context.Context, user string) ([]ImportedRange, error)
	Commitments(ctx context.Context, user string) ([]Commitment, error)

	AddManualRange(ctx context.Context, r ManualRange) (ManualRange, error)
	DeleteManualRange(ctx context.Context, user, id string) (bool, error)

	AddRepeatingRange(ctx context.Context, r RepeatingRange) (RepeatingRange, error)
	DeleteRepeatingRange(ctx context.Context, user, id string) (bool, error)

	ReplaceImported(ctx context.Context, user string, ranges []ImportedRange) error

	AddCommitment(ctx context.Context, c Commitment) (Commitment, error)

	Close(ctx context.Context) error
}
