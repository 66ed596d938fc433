package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
	"github.com/Pan-Binghong/family-constellation/internal/infra/ai/prompt"
	"github.com/Pan-Binghong/family-constellation/internal/infra/screenshot"
)

type fakeCompleter struct {
	tier   domain.Tier
	prompt string
	answer string
	err    error
}

func (f *fakeCompleter) Complete(_ context.Context, tier domain.Tier, p string) (string, error) {
	f.tier, f.prompt = tier, p
	return f.answer, f.err
}

const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func newService(c domain.Completer) *Service {
	return NewService(screenshot.NewProber(), prompt.NewBuilder(), c)
}

func TestAnalyzeDescriptionOnly(t *testing.T) {
	c := &fakeCompleter{answer: "好的分析"}
	out, err := newService(c).Analyze(context.Background(), domain.Request{Description: "爸爸在中间"})
	require.NoError(t, err)
	assert.Equal(t, "好的分析", out)
	assert.Equal(t, domain.TierBasic, c.tier)
	assert.Equal(t, prompt.BasicPrompt("爸爸在中间"), c.prompt)
}

func TestAnalyzeWithScreenshot(t *testing.T) {
	c := &fakeCompleter{answer: "报告"}
	_, err := newService(c).Analyze(context.Background(), domain.Request{Description: "d", Screenshot: onePixelPNG})
	require.NoError(t, err)
	assert.Equal(t, domain.TierExtended, c.tier)
	assert.Contains(t, c.prompt, "格式：PNG，色彩模式：RGB")
}

func TestAnalyzeWithBrokenScreenshot(t *testing.T) {
	c := &fakeCompleter{answer: "报告"}
	_, err := newService(c).Analyze(context.Background(), domain.Request{Description: "d", Screenshot: "%%%"})
	require.NoError(t, err)
	assert.Equal(t, domain.TierExtended, c.tier)
	assert.Contains(t, c.prompt, "截图处理失败")
}

func TestAnalyzeUsesMembersWhenDescriptionEmpty(t *testing.T) {
	c := &fakeCompleter{answer: "ok"}
	req := domain.Request{Members: []domain.Member{{Role: "母亲", Name: "王芳", Gender: "female"}}}
	_, err := newService(c).Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, c.prompt, "母亲（王芳, 女, 圆形, 未故）")
}

func TestAnalyzePropagatesCompleterError(t *testing.T) {
	boom := errors.New("boom")
	_, err := newService(&fakeCompleter{err: boom}).Analyze(context.Background(), domain.Request{})
	assert.ErrorIs(t, err, boom)
}

func TestProbeScreenshot(t *testing.T) {
	s := newService(&fakeCompleter{})
	assert.True(t, s.ProbeScreenshot(onePixelPNG).Success)
	assert.False(t, s.ProbeScreenshot("***").Success)
}
