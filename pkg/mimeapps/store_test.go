// pkg/mimeapps/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: in-memory filesystem
// PURPOSE: Test layer merging, writable layer queries and the mutation protocol

package mimeapps_test

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/filesystem"
	"github.com/arthur-debert/appsel/pkg/mimeapps"
	"github.com/arthur-debert/appsel/pkg/testutil"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userList   = "/home/u/.config/mimeapps.list"
	systemList = "/etc/xdg/mimeapps.list"
	dataList   = "/usr/share/applications/mimeapps.list"
)

func TestMergeAppendsAcrossLayers(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Default Applications]\nimage/png=a.desktop;\n")
	testutil.WriteFile(t, fsys, systemList, "[Default Applications]\nimage/png=b.desktop;c.desktop;\ntext/plain=e.desktop\n")
	testutil.WriteFile(t, fsys, dataList, "[Default Applications]\nimage/png=d.desktop;\n[Added Associations]\nimage/png=x.desktop;\n")

	store := mimeapps.New(fsys, []string{userList, systemList, dataList})

	merged := store.Merged()
	assert.Equal(t, []string{"a.desktop", "b.desktop", "c.desktop", "d.desktop"}, merged.Get(types.SectionDefaults, "image/png"))
	assert.Equal(t, []string{"e.desktop"}, merged.Get(types.SectionDefaults, "text/plain"))
	assert.Equal(t, []string{"x.desktop"}, merged.Get(types.SectionAdded, "image/png"))
	assert.Empty(t, merged.Get(types.SectionRemoved, "image/png"))
	assert.Equal(t, []string{"image/png", "text/plain"}, merged.Types(types.SectionDefaults))
}

func TestDuplicatesRemovedWithinLayer(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Added Associations]\ntext/plain=b.desktop;a.desktop;b.desktop;\n")
	testutil.WriteFile(t, fsys, systemList, "[Added Associations]\ntext/plain=b.desktop;\n")

	store := mimeapps.New(fsys, []string{userList, systemList})

	assert.Equal(t, []string{"b.desktop", "a.desktop", "b.desktop"}, store.Merged().Get(types.SectionAdded, "text/plain"))
	assert.Equal(t, []string{"b.desktop", "a.desktop"}, store.Local(types.SectionAdded, "text/plain"))
}

func TestLoadToleratesMissingAndMalformedFiles(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, systemList, "this is not ini\n[Default Applications]\nno delimiter here\ntext/plain=e.desktop;\n")

	store := mimeapps.New(fsys, []string{userList, systemList, "/nonexistent/mimeapps.list"})

	assert.Equal(t, userList, store.WritablePath())
	assert.NoError(t, store.Damage())
	assert.Equal(t, []string{"e.desktop"}, store.Merged().Get(types.SectionDefaults, "text/plain"))

	layers := store.Layers()
	require.Len(t, layers, 3)
	assert.False(t, layers[0].Exists)
	assert.True(t, layers[1].Exists)
	assert.False(t, layers[2].Exists)
	assert.Equal(t, []string{"text/plain"}, layers[1].Types(types.SectionDefaults))
}

func TestEmptyPathListUsesDefaultPath(t *testing.T) {
	old := mimeapps.DefaultPath
	mimeapps.DefaultPath = "/home/u/.config/mimeapps.list"
	t.Cleanup(func() { mimeapps.DefaultPath = old })

	store := mimeapps.New(testutil.NewTestFS(), nil)

	assert.Equal(t, "/home/u/.config/mimeapps.list", store.WritablePath())
}

func TestIsDefaultExplicitlySetOnlyLooksAtWritableLayer(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Default Applications]\nimage/png=a.desktop\n")
	testutil.WriteFile(t, fsys, systemList, "[Default Applications]\ntext/plain=e.desktop\n")

	store := mimeapps.New(fsys, []string{userList, systemList})

	assert.True(t, store.IsDefaultExplicitlySet("image/png"))
	assert.False(t, store.IsDefaultExplicitlySet("text/plain"))
	assert.False(t, store.IsDefaultExplicitlySet("video/mp4"))
}

func TestSetDefault(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, systemList, "[Default Applications]\nimage/png=b.desktop;\n")

	store := mimeapps.New(fsys, []string{userList, systemList})

	changed, err := store.SetDefault("image/png", "a.desktop")
	require.NoError(t, err)
	assert.True(t, changed)

	assert.True(t, store.IsDefaultExplicitlySet("image/png"))
	assert.Equal(t, []string{"a.desktop"}, store.Merged().Get(types.SectionDefaults, "image/png"))

	content := testutil.ReadFile(t, fsys, userList)
	assert.Contains(t, content, "[Default Applications]\n")
	assert.Contains(t, content, "image/png=a.desktop\n")
	assert.NotContains(t, content, " = ")

	// the system layer is never written
	assert.Equal(t, "[Default Applications]\nimage/png=b.desktop;\n", testutil.ReadFile(t, fsys, systemList))
}

func TestSetDefaultReplacesPreviousLocalDefault(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Default Applications]\nimage/png=a.desktop;z.desktop;\n")

	store := mimeapps.New(fsys, []string{userList})

	_, err := store.SetDefault("image/png", "b.desktop")
	require.NoError(t, err)

	assert.Equal(t, []string{"b.desktop"}, store.Local(types.SectionDefaults, "image/png"))
	assert.Contains(t, testutil.ReadFile(t, fsys, userList), "image/png=b.desktop\n")
}

func TestClearDefault(t *testing.T) {
	t.Run("removes only the active entry", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteFile(t, fsys, userList, "[Default Applications]\nimage/png=a.desktop;b.desktop;\n")
		testutil.WriteFile(t, fsys, systemList, "[Default Applications]\nimage/png=c.desktop;\n")

		store := mimeapps.New(fsys, []string{userList, systemList})

		changed, err := store.ClearDefault("image/png")
		require.NoError(t, err)
		assert.True(t, changed)

		assert.Equal(t, []string{"b.desktop"}, store.Local(types.SectionDefaults, "image/png"))
		assert.Equal(t, []string{"b.desktop", "c.desktop"}, store.Merged().Get(types.SectionDefaults, "image/png"))
		assert.Contains(t, testutil.ReadFile(t, fsys, userList), "image/png=b.desktop\n")
	})

	t.Run("falls back to lower layers after set then clear", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteFile(t, fsys, systemList, "[Default Applications]\nimage/png=c.desktop;\n")

		store := mimeapps.New(fsys, []string{userList, systemList})

		_, err := store.SetDefault("image/png", "a.desktop")
		require.NoError(t, err)
		_, err = store.ClearDefault("image/png")
		require.NoError(t, err)

		assert.False(t, store.IsDefaultExplicitlySet("image/png"))
		assert.Equal(t, []string{"c.desktop"}, store.Merged().Get(types.SectionDefaults, "image/png"))
		assert.NotContains(t, testutil.ReadFile(t, fsys, userList), "image/png")
	})

	t.Run("clearing an unset default is a no-op", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteFile(t, fsys, systemList, "[Default Applications]\nimage/png=c.desktop;\n")

		store := mimeapps.New(fsys, []string{userList, systemList})

		changed, err := store.ClearDefault("image/png")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.False(t, testutil.FileExists(fsys, userList), "no write should happen")
		assert.Equal(t, []string{"c.desktop"}, store.Merged().Get(types.SectionDefaults, "image/png"))
	})
}

func TestAddAssociationIsIdempotent(t *testing.T) {
	fsys := testutil.NewTestFS()
	store := mimeapps.New(fsys, []string{userList})

	changed, err := store.AddAssociation("text/plain", "x.desktop")
	require.NoError(t, err)
	assert.True(t, changed)
	first := testutil.ReadFile(t, fsys, userList)

	changed, err = store.AddAssociation("text/plain", "x.desktop")
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Equal(t, []string{"x.desktop"}, store.Merged().Get(types.SectionAdded, "text/plain"))
	assert.Equal(t, []string{"x.desktop"}, store.Local(types.SectionAdded, "text/plain"))
	assert.Equal(t, first, testutil.ReadFile(t, fsys, userList))
	assert.Contains(t, first, "[Added Associations]\ntext/plain=x.desktop\n")
}

func TestAddAssociationClearsLocalRemoval(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Removed Associations]\ntext/plain=x.desktop;\n")
	store := mimeapps.New(fsys, []string{userList})

	_, err := store.AddAssociation("text/plain", "x.desktop")
	require.NoError(t, err)

	assert.Empty(t, store.Local(types.SectionRemoved, "text/plain"))
	assert.Empty(t, store.Merged().Get(types.SectionRemoved, "text/plain"))
	assert.NotContains(t, testutil.ReadFile(t, fsys, userList), "[Removed Associations]\ntext/plain")
}

func TestRemoveAssociation(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Added Associations]\ntext/plain=x.desktop;y.desktop;\n")
	testutil.WriteFile(t, fsys, systemList, "[Added Associations]\ntext/plain=g.desktop;\n")
	store := mimeapps.New(fsys, []string{userList, systemList})

	changed, err := store.RemoveAssociation("text/plain", "x.desktop")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"y.desktop", "g.desktop"}, store.Merged().Get(types.SectionAdded, "text/plain"))
	assert.Contains(t, testutil.ReadFile(t, fsys, userList), "text/plain=y.desktop\n")

	// custom associations from other layers cannot be removed
	before := testutil.ReadFile(t, fsys, userList)
	changed, err = store.RemoveAssociation("text/plain", "g.desktop")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, testutil.ReadFile(t, fsys, userList))
	assert.Contains(t, store.Merged().Get(types.SectionAdded, "text/plain"), "g.desktop")
}

func TestRemovingLastEntryOmitsKey(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Added Associations]\ntext/plain=x.desktop;\nimage/png=v.desktop;\n")
	store := mimeapps.New(fsys, []string{userList})

	_, err := store.RemoveAssociation("text/plain", "x.desktop")
	require.NoError(t, err)

	content := testutil.ReadFile(t, fsys, userList)
	assert.NotContains(t, content, "text/plain")
	assert.Contains(t, content, "image/png=v.desktop")
}

func TestDisableAssociation(t *testing.T) {
	t.Run("disables a native association", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		store := mimeapps.New(fsys, []string{userList})

		changed, err := store.DisableAssociation("text/plain", "n.desktop")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []string{"n.desktop"}, store.Merged().Get(types.SectionRemoved, "text/plain"))
		assert.Contains(t, testutil.ReadFile(t, fsys, userList), "[Removed Associations]\ntext/plain=n.desktop\n")
	})

	t.Run("custom associations cannot be disabled", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteFile(t, fsys, systemList, "[Added Associations]\ntext/plain=x.desktop;\n")
		store := mimeapps.New(fsys, []string{userList, systemList})

		changed, err := store.DisableAssociation("text/plain", "x.desktop")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, store.Merged().Get(types.SectionRemoved, "text/plain"))
		assert.False(t, testutil.FileExists(fsys, userList))
	})

	t.Run("disabling twice is a no-op", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		store := mimeapps.New(fsys, []string{userList})

		_, err := store.DisableAssociation("text/plain", "n.desktop")
		require.NoError(t, err)
		changed, err := store.DisableAssociation("text/plain", "n.desktop")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, []string{"n.desktop"}, store.Local(types.SectionRemoved, "text/plain"))
	})
}

func TestEnableAssociation(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Removed Associations]\ntext/plain=x.desktop;\n")
	testutil.WriteFile(t, fsys, systemList, "[Removed Associations]\ntext/plain=y.desktop;\n")
	store := mimeapps.New(fsys, []string{userList, systemList})

	changed, err := store.EnableAssociation("text/plain", "x.desktop")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"y.desktop"}, store.Merged().Get(types.SectionRemoved, "text/plain"))
	assert.NotContains(t, testutil.ReadFile(t, fsys, userList), "x.desktop")

	// only disabled at a lower layer
	changed, err = store.EnableAssociation("text/plain", "y.desktop")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"y.desktop"}, store.Merged().Get(types.SectionRemoved, "text/plain"))
}

func TestPersistPreservesUntouchedContent(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userList, "[Default Applications]\nimage/png=a.desktop\n\n[X-Custom Section]\nfoo=bar\n")
	store := mimeapps.New(fsys, []string{userList})

	_, err := store.AddAssociation("text/plain", "x.desktop")
	require.NoError(t, err)

	content := testutil.ReadFile(t, fsys, userList)
	assert.Contains(t, content, "image/png=a.desktop\n")
	assert.Contains(t, content, "[X-Custom Section]\nfoo=bar\n")
	assert.Contains(t, content, "[Added Associations]\ntext/plain=x.desktop\n")
}

func TestWriteFailureIsSurfaced(t *testing.T) {
	base := testutil.NewTestFS()
	testutil.WriteFile(t, base, userList, "[Default Applications]\nimage/png=a.desktop\n")
	store := mimeapps.New(filesystem.ReadOnly(base), []string{userList})

	changed, err := store.SetDefault("image/png", "b.desktop")
	require.Error(t, err)
	assert.True(t, changed)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate) || errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, userList, errors.GetErrorDetails(err)["path"])

	// memory is ahead of disk until the next successful write
	assert.Equal(t, []string{"b.desktop"}, store.Merged().Get(types.SectionDefaults, "image/png"))
	assert.Contains(t, testutil.ReadFile(t, base, userList), "image/png=a.desktop")
}

func TestDamagedWritableLayerIsNotRewritten(t *testing.T) {
	fsys := testutil.NewTestFS()
	original := "# my prefs\n[Default Applications]\ntext/plain=keep.desktop\n[Added Associations\nimage/png=x.desktop\n"
	testutil.WriteFile(t, fsys, userList, original)

	store := mimeapps.New(fsys, []string{userList})

	// valid sections still load
	assert.True(t, store.IsDefaultExplicitlySet("text/plain"))
	assert.Equal(t, []string{"keep.desktop"}, store.Merged().Get(types.SectionDefaults, "text/plain"))
	assert.Empty(t, store.Merged().Get(types.SectionAdded, "image/png"))
	assert.Empty(t, store.Merged().Get(types.SectionDefaults, "image/png"))

	damage := store.Damage()
	require.Error(t, damage)
	assert.True(t, errors.IsErrorCode(damage, errors.ErrConfigParse))
	assert.Equal(t, userList, errors.GetErrorDetails(damage)["path"])

	calls := 0
	store.Subscribe(func() { calls++ })

	mutations := map[string]func() (bool, error){
		"set default": func() (bool, error) { return store.SetDefault("image/jpeg", "a.desktop") },
		"clear":       func() (bool, error) { return store.ClearDefault("text/plain") },
		"add":         func() (bool, error) { return store.AddAssociation("image/png", "a.desktop") },
		"remove":      func() (bool, error) { return store.RemoveAssociation("image/png", "x.desktop") },
		"disable":     func() (bool, error) { return store.DisableAssociation("image/png", "b.desktop") },
		"enable":      func() (bool, error) { return store.EnableAssociation("image/png", "b.desktop") },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			changed, err := mutate()
			assert.False(t, changed)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}

	assert.Equal(t, original, testutil.ReadFile(t, fsys, userList))
	assert.Empty(t, store.Merged().Get(types.SectionDefaults, "image/jpeg"))
	assert.Equal(t, 0, calls)
}

func TestBrokenLinesInReadOnlyLayersDoNotBlockWrites(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, systemList, "[Added Associations\nimage/png=x.desktop\n[Default Applications]\ntext/plain=e.desktop\n")

	store := mimeapps.New(fsys, []string{userList, systemList})
	require.NoError(t, store.Damage())
	assert.Equal(t, []string{"e.desktop"}, store.Merged().Get(types.SectionDefaults, "text/plain"))
	assert.Empty(t, store.Merged().Get(types.SectionAdded, "image/png"))

	changed, err := store.SetDefault("image/png", "a.desktop")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, testutil.ReadFile(t, fsys, userList), "image/png=a.desktop")
}

// unreadableFS fails every read of one path
type unreadableFS struct {
	types.FS
	path string
}

func (u unreadableFS) ReadFile(name string) ([]byte, error) {
	if name == u.path {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return u.FS.ReadFile(name)
}

func TestUnreadableWritableLayerIsNotRewritten(t *testing.T) {
	base := testutil.NewTestFS()
	testutil.WriteFile(t, base, userList, "[Default Applications]\ntext/plain=keep.desktop\n")

	store := mimeapps.New(unreadableFS{FS: base, path: userList}, []string{userList})
	assert.False(t, store.Layers()[0].Exists)
	assert.True(t, errors.IsErrorCode(store.Damage(), errors.ErrFileRead))

	_, err := store.SetDefault("image/png", "a.desktop")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "[Default Applications]\ntext/plain=keep.desktop\n", testutil.ReadFile(t, base, userList))
}

func TestSubscribersRunAfterMutations(t *testing.T) {
	fsys := testutil.NewTestFS()
	store := mimeapps.New(fsys, []string{userList})

	calls := 0
	store.Subscribe(func() { calls++ })

	_, _ = store.AddAssociation("text/plain", "x.desktop")
	_, _ = store.AddAssociation("text/plain", "x.desktop") // no-op
	_, _ = store.SetDefault("text/plain", "x.desktop")
	_, _ = store.ClearDefault("image/png") // no-op

	assert.Equal(t, 2, calls)
}

func TestParseLayer(t *testing.T) {
	layer, err := mimeapps.ParseLayer("/x/mimeapps.list", []byte(
		"[Added Associations]\nimage/png=b.desktop;a.desktop;\ntext/plain=c.desktop\n[Removed Associations]\nimage/png=a.desktop\n"))
	require.NoError(t, err)

	assert.True(t, layer.Exists)
	assert.Equal(t, []string{"image/png", "text/plain"}, layer.Types(types.SectionAdded))
	assert.Equal(t, []string{"b.desktop", "a.desktop"}, layer.Get(types.SectionAdded, "image/png"))
	assert.True(t, layer.Contains(types.SectionRemoved, "image/png", "a.desktop"))
}
