package reports

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	"github.com/Grupo02-6P/grupo02-sub001/internal/middleware"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DRECalculator builds the income statement: two account trees rooted at
// code prefixes "4" (revenue) and "5" (expense), with balances rolled up
// bottom-up and the net result derived from the two root totals.
type DRECalculator struct {
	repo portsrepo.ReportingRepository
}

// NewDRECalculator creates an income statement calculator.
func NewDRECalculator(repo portsrepo.ReportingRepository) *DRECalculator {
	return &DRECalculator{repo: repo}
}

var _ Calculator = (*DRECalculator)(nil)

// Calculate fetches the revenue/expense account set and the trial balance
// concurrently, then assembles and rolls up the two trees. A missing "4" or
// "5" root yields an empty zero-balance tree rather than an error.
func (c *DRECalculator) Calculate(ctx context.Context, period domain.Period, _ Options) (*domain.Report, error) {
	var (
		accounts []domain.Account
		balances []domain.TrialBalanceData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = c.repo.GetAllAccountsByRoot(gctx, []string{domain.RootReceita, domain.RootDespesa})
		if err != nil {
			return fmt.Errorf("failed to retrieve result accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = c.repo.GetTrialBalanceData(gctx, period.EndDate)
		if err != nil {
			return fmt.Errorf("failed to retrieve trial balance data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	receitas, despesas := c.buildTrees(ctx, accounts, balances)
	rollupBalances(receitas)
	rollupBalances(despesas)

	totalReceitas := receitas.Balance
	totalDespesas := despesas.Balance

	return &domain.Report{
		Type:   domain.ReportDRE,
		Title:  TitleDRE,
		Period: period,
		Data: domain.DREReport{
			Receitas:      receitas,
			Despesas:      despesas,
			TotalReceitas: totalReceitas,
			TotalDespesas: totalDespesas,
			LucroPrejuizo: totalReceitas.Sub(totalDespesas),
		},
	}, nil
}

// buildTrees indexes one node per account, assigns leaf balances from the
// trial balance, then links children to parents. Nodes whose parent is not
// in the fetched set become roots; only the "4" and "5" roots survive.
func (c *DRECalculator) buildTrees(ctx context.Context, accounts []domain.Account, balances []domain.TrialBalanceData) (receitas, despesas *domain.DRENode) {
	logger := middleware.GetLoggerFromCtx(ctx)

	nodes := make(map[string]*domain.DRENode, len(accounts))
	index := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		nodes[acc.AccountID] = &domain.DRENode{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			Synthetic: !acc.AcceptsPosting,
			Balance:   decimal.Zero,
		}
		index[acc.AccountID] = acc
	}

	for _, row := range balances {
		node, ok := nodes[row.AccountID]
		if !ok || node.Synthetic {
			continue
		}
		// Revenue accounts are credit-natured: the trial balance stores them
		// negative, so flip the sign to present revenue as positive. Expense
		// accounts are debit-natured and keep their sign.
		if acc := index[row.AccountID]; acc.RootDigit() == domain.RootReceita {
			node.Balance = row.Balance.Neg()
		} else {
			node.Balance = row.Balance
		}
	}

	// The accounts slice arrives ordered by code, which keeps children in
	// code order without an extra sort.
	for _, acc := range accounts {
		node := nodes[acc.AccountID]
		parent, ok := nodes[acc.ParentAccountID]
		if !ok {
			switch node.Code {
			case domain.RootReceita:
				receitas = node
			case domain.RootDespesa:
				despesas = node
			default:
				// Orphans outside the two expected roots are dropped from
				// both trees; this usually signals a misconfigured chart.
				logger.Warn("DRE: dropping account with no parent in result set",
					slog.String("account_id", acc.AccountID),
					slog.String("code", acc.Code))
			}
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if receitas == nil {
		receitas = &domain.DRENode{Code: domain.RootReceita, Name: "Receitas", Synthetic: true, Balance: decimal.Zero}
	}
	if despesas == nil {
		despesas = &domain.DRENode{Code: domain.RootDespesa, Name: "Despesas", Synthetic: true, Balance: decimal.Zero}
	}
	return receitas, despesas
}

// rollupBalances recomputes every synthetic node's balance as the sum of its
// children, bottom-up. Posting (leaf) nodes keep the balance assigned from
// the trial balance even if they unexpectedly have children. The traversal
// uses an explicit post-order stack so deep hierarchies cannot overflow.
func rollupBalances(root *domain.DRENode) {
	if root == nil {
		return
	}
	type frame struct {
		node     *domain.DRENode
		expanded bool
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !top.expanded {
			stack = append(stack, frame{node: top.node, expanded: true})
			for _, child := range top.node.Children {
				stack = append(stack, frame{node: child})
			}
			continue
		}
		if top.node.Synthetic {
			sum := decimal.Zero
			for _, child := range top.node.Children {
				sum = sum.Add(child.Balance)
			}
			top.node.Balance = sum
		}
	}
}
