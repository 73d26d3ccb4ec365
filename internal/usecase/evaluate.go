package usecase

import (
	"strings"

	"legalqa/internal/adapter/retriever"
	"legalqa/internal/domain"
)

// EvalReport holds mean relevance metrics at K over the corpus's own
// labelled queries.
type EvalReport struct {
	Queries   int     `json:"queries"`
	K         int     `json:"k"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	MRR       float64 `json:"mrr"`
	NDCG      float64 `json:"ndcg"`
}

// Evaluate replays every distinct metadata original_query as a search and
// judges the documents labelled with that query as relevant.
func (e *Engine) Evaluate(k int) (EvalReport, error) {
	if k <= 0 {
		k = 5
	}
	st := e.state.Load()
	if st == nil {
		return EvalReport{}, domain.ErrNotLoaded
	}

	var order []string
	labelled := make(map[string][]int)
	for i, m := range st.store.AllMetadata() {
		q := strings.TrimSpace(m.OriginalQuery)
		if q == "" {
			continue
		}
		if _, seen := labelled[q]; !seen {
			order = append(order, q)
		}
		labelled[q] = append(labelled[q], i)
	}

	report := EvalReport{Queries: len(order), K: k}
	if len(order) == 0 {
		return report, nil
	}

	for _, q := range order {
		relevant := labelled[q]
		result := e.search(q, k)
		retrieved := make([]int, len(result.Results))
		for i, r := range result.Results {
			retrieved[i] = r.Index
		}

		p := retriever.PrecisionAtK(retrieved, relevant)
		r := retriever.RecallAtK(retrieved, relevant)
		report.Precision += p
		report.Recall += r
		report.F1 += retriever.F1(p, r)
		report.MRR += retriever.ReciprocalRank(retrieved, relevant)
		report.NDCG += retriever.NDCG(retrieved, relevant)
	}

	n := float64(len(order))
	report.Precision /= n
	report.Recall /= n
	report.F1 /= n
	report.MRR /= n
	report.NDCG /= n

	e.logger.Info("evaluation complete", "queries", report.Queries, "k", k, "f1", report.F1, "mrr", report.MRR)
	return report, nil
}
