package ledger

import (
	"time"

	"github.com/amirasaad/ledger/pkg/dto"
)

// CreateOperationRequest is the body of POST /clientes/:id/transacoes.
type CreateOperationRequest struct {
	Value       int64  `json:"valor" validate:"required,gt=0"`
	Kind        string `json:"tipo" validate:"required,oneof=c d"`
	Description string `json:"descricao" validate:"required,min=1,max=10"`
}

// CreateOperationResponse carries the account limit and the post-operation
// balance back to the caller.
type CreateOperationResponse struct {
	Limit   int64 `json:"limite"`
	Balance int64 `json:"saldo"`
}

// StatementBalance is the balance block of a statement response.
type StatementBalance struct {
	Total     int64     `json:"total"`
	Limit     int64     `json:"limite"`
	QueriedAt time.Time `json:"data_extrato"`
}

// StatementOperation is one entry of the statement response, newest first.
type StatementOperation struct {
	Value       int64     `json:"valor"`
	Kind        string    `json:"tipo"`
	Description string    `json:"descricao"`
	OccurredAt  time.Time `json:"realizada_em"`
}

// StatementResponse is the body of GET /clientes/:id/extrato.
type StatementResponse struct {
	Balance        StatementBalance     `json:"saldo"`
	LastOperations []StatementOperation `json:"ultimas_transacoes"`
}

func newStatementResponse(st *dto.StatementRead) StatementResponse {
	ops := make([]StatementOperation, 0, len(st.Operations))
	for _, op := range st.Operations {
		ops = append(ops, StatementOperation{
			Value:       op.Amount,
			Kind:        string(op.Kind),
			Description: op.Description,
			OccurredAt:  op.OccurredAt,
		})
	}
	return StatementResponse{
		Balance: StatementBalance{
			Total:     st.Balance,
			Limit:     st.Limit,
			QueriedAt: st.QueriedAt,
		},
		LastOperations: ops,
	}
}
