package application

import "context"

// Repository は応募コレクションの永続化を行うインターフェースです。
type Repository interface {
	Insert(ctx context.Context, application *Application) (*Application, error)
	Update(ctx context.Context, application *Application) (*Application, error)
	List(ctx context.Context) ([]*Application, error)
	FindByID(ctx context.Context, id string) (*Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantEmail string) (*Application, error)
}
