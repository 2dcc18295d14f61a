// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying vertex/edge counts, specific edges, and matrix invariants.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/matrix"
	"github.com/stretchr/testify/require"
)

// requireMatrixInvariants checks the backing matrix with
// matrix.ValidateAdjacency, that Flat mirrors it, and that the entry sum is
// twice the edge count.
func requireMatrixInvariants(t *testing.T, a *builder.Adjacency) {
	t.Helper()
	m := a.Matrix()
	require.NoError(t, matrix.ValidateAdjacency(m))
	require.Equal(t, a.N(), m.Rows())
	require.Equal(t, m.Flat(), a.Flat())
	require.Equal(t, 2*a.EdgeCount(), m.Sum())
	for v := 0; v < a.N(); v++ {
		d, err := m.RowSum(v)
		require.NoError(t, err)
		require.Equal(t, d, a.Degree(v))
	}
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, a *builder.Adjacency)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, a *builder.Adjacency) {
				for i := 0; i < 5; i++ {
					require.True(t, a.HasEdge(i, (i+1)%5), "missing %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, a *builder.Adjacency) {
				require.True(t, a.HasEdge(2, 3))
				require.False(t, a.HasEdge(3, 0))
			},
		},
		{
			name:  "Star(6)",
			ctor:  builder.Star(6),
			wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, a *builder.Adjacency) {
				require.Equal(t, 5, a.Degree(0))
				require.Equal(t, 1, a.Degree(3))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, a *builder.Adjacency) {
				require.Equal(t, 4, a.Degree(4), "hub degree")
				require.True(t, a.HasEdge(3, 0), "ring closure")
			},
		},
		{
			name:  "Complete(5)",
			ctor:  builder.Complete(5),
			wantV: 5, wantE: 10,
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, a *builder.Adjacency) {
				require.False(t, a.HasEdge(0, 1), "left side must be independent")
				require.False(t, a.HasEdge(2, 4), "right side must be independent")
				require.True(t, a.HasEdge(1, 4))
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, a *builder.Adjacency) {
				require.True(t, a.HasEdge(0, 3), "bottom neighbor")
				require.False(t, a.HasEdge(2, 3), "no wrap-around")
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
		{
			name:  "FromEdges duplicates",
			ctor:  builder.FromEdges(4, [][2]int{{0, 1}, {1, 0}, {2, 3}, {0, 1}}),
			wantV: 4, wantE: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := builder.BuildAdjacency(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, a.N())
			require.Equal(t, tc.wantE, a.EdgeCount())
			requireMatrixInvariants(t, a)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, a)
			}
		})
	}
}

func TestBuildAdjacency_Overlay(t *testing.T) {
	// A 4-path overlaid with a 6-star grows to 6 vertices and keeps both edge sets.
	a, err := builder.BuildAdjacency(nil, builder.Path(4), builder.Star(6))
	require.NoError(t, err)
	require.Equal(t, 6, a.N())
	require.True(t, a.HasEdge(2, 3))
	require.True(t, a.HasEdge(0, 5))
	// 0-1 is shared by both constructors.
	require.Equal(t, 3+5-1, a.EdgeCount())
	requireMatrixInvariants(t, a)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a1, err := builder.BuildAdjacency([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(10, 0.4))
	require.NoError(t, err)
	a2, err := builder.BuildAdjacency([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(10, 0.4))
	require.NoError(t, err)
	require.Equal(t, a1.Flat(), a2.Flat())
	requireMatrixInvariants(t, a1)
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Complete(31)", builder.Complete(builder.MaxVertices + 1), builder.ErrTooManyVertices},
		{"CompleteBipartite(0,3)", builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"Grid(6,6)", builder.Grid(6, 6), builder.ErrTooManyVertices},
		{"RandomSparse p<0", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"FromEdges range", builder.FromEdges(3, [][2]int{{0, 3}}), builder.ErrVertexRange},
		{"FromEdges negative", builder.FromEdges(3, [][2]int{{-1, 1}}), builder.ErrVertexRange},
		{"FromEdges loop", builder.FromEdges(3, [][2]int{{1, 1}}), builder.ErrSelfLoop},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildAdjacency(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestAdjacency_Direct(t *testing.T) {
	_, err := builder.NewAdjacency(-1)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	a, err := builder.NewAdjacency(3)
	require.NoError(t, err)
	require.NoError(t, a.AddEdge(0, 2))
	require.NoError(t, a.AddEdge(2, 0))
	require.Equal(t, 1, a.EdgeCount())
	require.ErrorIs(t, a.AddEdge(1, 1), builder.ErrSelfLoop)
	require.ErrorIs(t, a.AddEdge(0, 3), builder.ErrVertexRange)
	require.False(t, a.HasEdge(0, 9))
	require.Zero(t, a.Degree(-1))

	flat := a.Flat()
	flat[1] = 1
	require.False(t, a.HasEdge(0, 1), "Flat must return a copy")
}
