package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed writes chunks into the parser via AcquireBuffer/Commit, in
// order, marking end of input after the last chunk, and drains every
// result along the way.
func feed(t *testing.T, p *Parser, chunks ...string) []*Expr {
	t.Helper()
	var results []*Expr

	for i, chunk := range chunks {
		buf, headroom := p.AcquireBuffer()
		require.GreaterOrEqual(t, headroom, len(chunk), "chunk too large for acquired headroom")
		n := copy(buf, chunk)
		p.Commit(n, i == len(chunks)-1)

		for {
			switch st := p.Step(); st {
			case StatusResult:
				for {
					e, ok := p.NextResult()
					if !ok {
						break
					}
					results = append(results, e)
				}
			case StatusMore:
				goto nextChunk
			case StatusDone:
				for {
					e, ok := p.NextResult()
					if !ok {
						break
					}
					results = append(results, e)
				}
				goto nextChunk
			case StatusError:
				require.NoError(t, p.Err())
			}
		}
	nextChunk:
	}

	return results
}

// symbolTexts returns the string value of every node in the sibling
// chain starting at head, in order; it fails the test on a list-shaped
// node.
func symbolTexts(t *testing.T, head *Expr) []string {
	t.Helper()
	var out []string
	for e := head; e != nil; e = e.Next {
		require.True(t, e.Type.IsStr(), "expected a string-shaped node, got %s", e.Type)
		out = append(out, e.StrValue().CStr())
	}
	return out
}

func TestScenario1_FlatList(t *testing.T) {
	p := New()
	results := feed(t, p, "a b c\n")
	require.Len(t, results, 1)

	root := results[0]
	assert.Equal(t, LIST, root.Type)
	assert.Equal(t, []string{"a", "b", "c"}, symbolTexts(t, root.Head()))
	assert.Equal(t, "a b c", root.String())
}

func TestScenario2_IndentOpensBlock(t *testing.T) {
	p := New()
	results := feed(t, p, "a\n  b c\n  d e\n")
	require.Len(t, results, 1)

	root := results[0]
	assert.Equal(t, LIST, root.Type)

	a := root.Head()
	require.NotNil(t, a)
	assert.Equal(t, SYM, a.Type)
	assert.Equal(t, "a", a.StrValue().CStr())

	block := a.Next
	require.NotNil(t, block)
	assert.Equal(t, BLOCK, block.Type)
	assert.Nil(t, block.Next)

	bc := block.Head()
	require.NotNil(t, bc)
	assert.Equal(t, LIST, bc.Type)
	assert.Equal(t, []string{"b", "c"}, symbolTexts(t, bc.Head()))

	de := bc.Next
	require.NotNil(t, de)
	assert.Equal(t, LIST, de.Type)
	assert.Equal(t, []string{"d", "e"}, symbolTexts(t, de.Head()))
	assert.Nil(t, de.Next)
}

func TestScenario3_SemicolonSplitsList(t *testing.T) {
	p := New()
	results := feed(t, p, "a b; c d\n")
	require.Len(t, results, 2)

	assert.Equal(t, []string{"a", "b"}, symbolTexts(t, results[0].Head()))
	assert.Equal(t, []string{"c", "d"}, symbolTexts(t, results[1].Head()))
}

func TestScenario4_AssignmentWithBlock(t *testing.T) {
	p := New()
	results := feed(t, p, "foo:\n  1 2\n")
	require.Len(t, results, 1)

	root := results[0]
	foo := root.Head()
	require.NotNil(t, foo)
	assert.Equal(t, ASSIGNMENT, foo.Type)
	assert.Equal(t, "foo", foo.StrValue().CStr())

	block := foo.Next
	require.NotNil(t, block)
	assert.Equal(t, BLOCK, block.Type)

	inner := block.Head()
	require.NotNil(t, inner)
	assert.Equal(t, LIST, inner.Type)
	assert.Equal(t, []string{"1", "2"}, symbolTexts(t, inner.Head()))
}

func TestScenario5_GroupClosesBlockThenGroup(t *testing.T) {
	p := New()
	results := feed(t, p, "a (b\n    c) d\n")
	require.Len(t, results, 1)

	root := results[0]
	a := root.Head()
	require.NotNil(t, a)
	assert.Equal(t, "a", a.StrValue().CStr())

	group := a.Next
	require.NotNil(t, group)
	assert.Equal(t, GROUP, group.Type)

	d := group.Next
	require.NotNil(t, d)
	assert.Equal(t, "d", d.StrValue().CStr())
	assert.Nil(t, d.Next)

	bList := group.Head()
	require.NotNil(t, bList)
	assert.Equal(t, LIST, bList.Type)
	assert.Equal(t, []string{"b"}, symbolTexts(t, bList.Head()))

	block := bList.Next
	require.NotNil(t, block)
	assert.Equal(t, BLOCK, block.Type)
	assert.Nil(t, block.Next)

	cList := block.Head()
	require.NotNil(t, cList)
	assert.Equal(t, LIST, cList.Type)
	assert.Equal(t, []string{"c"}, symbolTexts(t, cList.Head()))
}

func TestScenario6_MixedIndentationIsAnError(t *testing.T) {
	p := New()
	buf, _ := p.AcquireBuffer()
	n := copy(buf, "a\n  b\n")
	p.Commit(n, false)
	require.Equal(t, StatusMore, p.Step())

	buf, _ = p.AcquireBuffer()
	n = copy(buf, "# hi\na\n\t b\n")
	p.Commit(n, true)

	var st Status
	for {
		st = p.Step()
		if st == StatusResult {
			for {
				if _, ok := p.NextResult(); !ok {
					break
				}
			}
			continue
		}
		break
	}

	require.Equal(t, StatusError, st)
	err := p.Err()
	require.Error(t, err)
	assert.True(t, IsParseError(err, ErrIndentation))
	assert.Contains(t, err.Error(), "Mixed line indentation")
}

func TestScenario7_EndMarkerTruncatesInput(t *testing.T) {
	p := New()
	results := feed(t, p, "__END__\nignored\n")
	require.Len(t, results, 0)
}

func TestBoundary_EmptyInput(t *testing.T) {
	p := New()
	results := feed(t, p, "")
	assert.Len(t, results, 0)
}

func TestBoundary_CommentOnlyInput(t *testing.T) {
	p := New()
	results := feed(t, p, "# just a comment\n")
	require.Len(t, results, 1)

	root := results[0]
	comment := root.Head()
	require.NotNil(t, comment)
	assert.Equal(t, COMMENT, comment.Type)
	assert.Equal(t, " just a comment", comment.StrValue().CStr())
	assert.Nil(t, comment.Next)
}

func TestBoundary_TokenSplitAcrossFillCalls(t *testing.T) {
	oneShot := New()
	single := feed(t, oneShot, "foo bar baz\n")
	require.Len(t, single, 1)

	split := New()
	multi := feed(t, split, "foo ba", "r baz\n")
	require.Len(t, multi, 1)

	assert.Equal(t, symbolTexts(t, single[0].Head()), symbolTexts(t, multi[0].Head()))
	assert.Equal(t, []string{"foo", "bar", "baz"}, symbolTexts(t, multi[0].Head()))
}

func TestAssignmentPopulatesNamespace(t *testing.T) {
	p := New()
	feed(t, p, "foo: 1\n")
	expr, ok := p.rootNS.names["foo"]
	require.True(t, ok)
	assert.Equal(t, ASSIGNMENT, expr.Type)
}

func TestInlineBlockPrintsWithSemicolonSeparators(t *testing.T) {
	p := New()
	results := feed(t, p, "a {b c; d e}\n")
	require.Len(t, results, 1)
	assert.Equal(t, "a { b c; d e }", results[0].String())
}
