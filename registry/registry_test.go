package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/registry"
	"github.com/reoring/scbind/schema"
)

func blocklog() *schema.Contract {
	return &schema.Contract{
		Name: "blocklog",
		Views: []schema.Func{
			{
				Name:    "getBlockInfo",
				Params:  []schema.Field{{Name: "blockIndex", Key: "n"}},
				Results: []schema.Field{{Name: "blockIndex", Key: "n"}, {Name: "blockInfo", Key: "i"}},
			},
			{
				Name:    "getRequestReceipt",
				Params:  []schema.Field{{Name: "requestID", Key: "u"}},
				Results: []schema.Field{{Name: "requestReceipt", Key: "d"}},
			},
			{
				Name:    "getRequestReceiptsForBlock",
				Params:  []schema.Field{{Name: "blockIndex", Key: "n"}},
				Results: []schema.Field{{Name: "requestReceipts", Key: "d"}},
			},
		},
	}
}

func TestFromSchema_HashesKeysAndNames(t *testing.T) {
	tbl, err := registry.FromSchema(blocklog())
	require.NoError(t, err)

	c, ok := tbl.Contract()
	require.True(t, ok)
	require.Equal(t, hname.Hname(0xf538ef2b), c.Selector)

	sel, ok := tbl.Selector(registry.NamespaceFunction, "getBlockInfo")
	require.True(t, ok)
	require.Equal(t, hname.Hname(0xbe89f9b3), sel)

	// params are hashed by wire key, not by field name
	sel, ok = tbl.Selector(registry.NamespaceParam, "n")
	require.True(t, ok)
	require.Equal(t, hname.Hname(0x8fde9315), sel)
	_, ok = tbl.Selector(registry.NamespaceParam, "blockIndex")
	require.False(t, ok)

	e, ok := tbl.Lookup(registry.NamespaceParam, 0x986cd755)
	require.True(t, ok)
	require.Equal(t, "requestID", e.Name)
}

func TestBuild_SameKeyIsAlias(t *testing.T) {
	tbl, err := registry.FromSchema(blocklog())
	require.NoError(t, err)

	results := tbl.Entries(registry.NamespaceResult)
	names := make([]string, 0, len(results))
	for _, e := range results {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"blockIndex", "blockInfo", "requestReceipt", "requestReceipts"}, names)
	require.Equal(t, results[2].Selector, results[3].Selector)
	require.Equal(t, hname.Hn("d"), results[3].Selector)
}

func TestBuild_NamespacesAreIndependent(t *testing.T) {
	tbl, err := registry.Build([]registry.Decl{
		{Namespace: registry.NamespaceContract, Name: "n"},
		{Namespace: registry.NamespaceFunction, Name: "n"},
		{Namespace: registry.NamespaceParam, Name: "n"},
		{Namespace: registry.NamespaceResult, Name: "n"},
	})
	require.NoError(t, err)
	for _, ns := range []registry.Namespace{registry.NamespaceFunction, registry.NamespaceParam, registry.NamespaceResult} {
		require.Len(t, tbl.Entries(ns), 1, ns.String())
	}
}

func TestBuild_Collision(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	_, err := registry.Build([]registry.Decl{
		{Namespace: registry.NamespaceFunction, Name: "k32194"},
		{Namespace: registry.NamespaceFunction, Name: "k112771"},
	}, registry.WithLogger(zap.New(core)))

	var ce *registry.CollisionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, registry.NamespaceFunction, ce.Namespace)
	require.Equal(t, hname.Hname(0x239f6a16), ce.Selector)
	require.Equal(t, "k32194", ce.First.Name)
	require.Equal(t, "k112771", ce.Second.Name)
	require.Contains(t, err.Error(), "239f6a16")
	require.Equal(t, 1, logs.FilterMessage("selector collision").Len())

	// the same pair in different namespaces is fine
	_, err = registry.Build([]registry.Decl{
		{Namespace: registry.NamespaceFunction, Name: "k32194"},
		{Namespace: registry.NamespaceParam, Name: "k112771"},
	})
	require.NoError(t, err)
}

func TestBuild_Errors(t *testing.T) {
	_, err := registry.Build([]registry.Decl{{Namespace: registry.NamespaceParam}})
	require.True(t, errors.Is(err, registry.ErrEmptyName))

	_, err = registry.Build([]registry.Decl{
		{Namespace: registry.NamespaceContract, Name: "root"},
		{Namespace: registry.NamespaceContract, Name: "blob"},
	})
	require.ErrorIs(t, err, registry.ErrMultipleContracts)

	_, err = registry.FromSchema(&schema.Contract{})
	require.Error(t, err)
}

func TestWithLogger_DebugEntries(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := registry.FromSchema(blocklog(), registry.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("selector alias").Len())
	require.NotZero(t, logs.FilterMessage("selector").Len())
}
