package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sales-analysis-cli/internal/dataset"
)

func cleanedTable() dataset.Table {
	return dataset.New(
		[]string{"sales_method", "revenue", "week"},
		[][]dataset.Value{
			{dataset.String("Email"), dataset.Number(10), dataset.Number(1)},
			{dataset.String("Email"), dataset.Number(20), dataset.Number(2)},
			{dataset.String("Call"), dataset.Number(5), dataset.Number(1)},
			{dataset.String("Email + Call"), dataset.Number(50), dataset.Number(2)},
			{dataset.String("Email + Call"), dataset.Number(40), dataset.Number(2)},
		},
	)
}

func TestBriefInfo(t *testing.T) {
	t.Parallel()

	tbl := dataset.New([]string{"sales_method", "revenue"}, [][]dataset.Value{
		{dataset.String("Email"), dataset.Number(1)},
		{dataset.String("Call"), dataset.Null()},
	})

	b := BriefInfo(tbl)
	assert.Equal(t, 2, b.Rows)
	assert.Equal(t, 2, b.Cols)
	assert.Equal(t, []string{"sales_method", "revenue"}, b.Columns)
	assert.True(t, b.HasRevenue)
	assert.Equal(t, 1, b.RevenueNulls)

	noRev := BriefInfo(dataset.New([]string{"x"}, nil))
	assert.False(t, noRev.HasRevenue)
	assert.Zero(t, noRev.RevenueNulls)
}

func TestCountByMethod(t *testing.T) {
	t.Parallel()

	counts := CountByMethod(cleanedTable())
	require.Len(t, counts, 3)
	assert.Equal(t, MethodCount{Method: "Email", Count: 2}, counts[0])
	assert.Equal(t, MethodCount{Method: "Call", Count: 1}, counts[1])
	assert.Equal(t, MethodCount{Method: "Email + Call", Count: 2}, counts[2])
}

func TestCountByMethodAbsentMethodCountsZero(t *testing.T) {
	t.Parallel()

	tbl := dataset.New([]string{"sales_method"}, [][]dataset.Value{
		{dataset.String("Email")},
	})
	counts := CountByMethod(tbl)
	require.Len(t, counts, 3)
	assert.Equal(t, 1, counts[0].Count)
	assert.Zero(t, counts[1].Count)
	assert.Zero(t, counts[2].Count)
}

func TestAvgRevenueByMethodSortedDescending(t *testing.T) {
	t.Parallel()

	metric := AvgRevenueByMethod(cleanedTable())
	require.Len(t, metric, 3, "one row per distinct method present")

	assert.Equal(t, "Email + Call", metric[0].Method)
	assert.InDelta(t, 45, metric[0].Mean, 1e-9)
	assert.Equal(t, 2, metric[0].N)

	assert.Equal(t, "Email", metric[1].Method)
	assert.InDelta(t, 15, metric[1].Mean, 1e-9)

	assert.Equal(t, "Call", metric[2].Method)
	assert.InDelta(t, 5, metric[2].Mean, 1e-9)

	for i := 1; i < len(metric); i++ {
		assert.GreaterOrEqual(t, metric[i-1].Mean, metric[i].Mean)
	}
}

func TestAvgRevenueByMethodOnlyPresentMethods(t *testing.T) {
	t.Parallel()

	tbl := dataset.New([]string{"sales_method", "revenue"}, [][]dataset.Value{
		{dataset.String("Call"), dataset.Number(8)},
	})
	metric := AvgRevenueByMethod(tbl)
	require.Len(t, metric, 1)
	assert.Equal(t, "Call", metric[0].Method)
}

func TestAvgRevenueByMethodMissingColumns(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AvgRevenueByMethod(dataset.New([]string{"revenue"}, nil)))
	assert.Empty(t, AvgRevenueByMethod(dataset.New([]string{"sales_method"}, nil)))
}

func TestRevenueByMethodCanonicalOrder(t *testing.T) {
	t.Parallel()

	grouped := RevenueByMethod(cleanedTable())
	require.Len(t, grouped, 3)
	assert.Equal(t, "Email", grouped[0].Method)
	assert.Equal(t, []float64{10, 20}, grouped[0].Values)
	assert.Equal(t, "Call", grouped[1].Method)
	assert.Equal(t, "Email + Call", grouped[2].Method)
}

func TestRevenueValues(t *testing.T) {
	t.Parallel()

	tbl := dataset.New([]string{"revenue"}, [][]dataset.Value{
		{dataset.Number(1)}, {dataset.Null()}, {dataset.Number(3)},
	})
	assert.Equal(t, []float64{1, 3}, RevenueValues(tbl))
	assert.Empty(t, RevenueValues(dataset.New([]string{"x"}, nil)))
}
