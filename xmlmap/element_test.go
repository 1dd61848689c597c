package xmlmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/xmlmap"
)

func TestParse(t *testing.T) {
	root := parse(t, doc)
	require.Equal(t, "entry", root.Tag())
	require.Empty(t, root.Text())
	require.Len(t, root.Children(), 3)

	name := root.Children()[0]
	require.Equal(t, "name", name.Tag())
	require.Equal(t, "1ABC", name.Text())

	chain := root.Children()[1]
	require.Equal(t, []xmlmap.Attr{{Key: "id", Value: "A"}}, chain.Attrs())
	require.Empty(t, chain.Text())
}

func TestParseErrors(t *testing.T) {
	_, err := xmlmap.Parse(strings.NewReader(""))
	require.ErrorIs(t, err, xmlmap.ErrNoRoot)

	_, err = xmlmap.Parse(strings.NewReader("<a><b></a>"))
	require.Error(t, err)
}

func TestNewElement(t *testing.T) {
	e := xmlmap.NewElement("tag", []xmlmap.Attr{{Key: "k", Value: "v"}}, "text")
	e.Append(xmlmap.NewElement("child", nil, ""))

	require.Equal(t, "tag", e.Tag())
	require.Equal(t, "text", e.Text())
	require.Len(t, e.Children(), 1)
}
