package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurscope/ayurscope/pkg/almanac"
	"github.com/ayurscope/ayurscope/pkg/chat/mocks"
	"github.com/ayurscope/ayurscope/pkg/domain"
	"github.com/ayurscope/ayurscope/pkg/repository"
)

// fixed September morning, Sharad season, Pitta midday approaching
var testNow = time.Date(2025, time.September, 10, 11, 0, 0, 0, time.UTC)

type testMocks struct {
	profiles      *mocks.ProfileStoreMock
	consultations *mocks.ConsultationStoreMock
	articles      *mocks.ArticleStoreMock
	advisor       *mocks.CompleterMock
}

func newTestService(t *testing.T) (*Service, *testMocks) {
	t.Helper()

	m := &testMocks{
		profiles: &mocks.ProfileStoreMock{
			GetFunc: func(ctx context.Context, userID string) (*domain.Profile, error) {
				return nil, repository.ErrProfileNotFound
			},
			UpdateScoresFunc: func(ctx context.Context, userID string, scores domain.DoshaScores, dominant string) error {
				return nil
			},
		},
		consultations: &mocks.ConsultationStoreMock{
			CreateFunc: func(ctx context.Context, c *domain.Consultation) error {
				c.ID = 42
				return nil
			},
			RecentExchangesFunc: func(ctx context.Context, userID string, n int) ([]domain.Exchange, error) {
				return nil, nil
			},
			RecentFunc: func(ctx context.Context, userID string, n int) ([]*domain.Consultation, error) {
				return nil, nil
			},
		},
		articles: &mocks.ArticleStoreMock{
			ListPublishedFunc: func(ctx context.Context, limit int) ([]*domain.Article, error) {
				return nil, nil
			},
		},
		advisor: &mocks.CompleterMock{
			CompleteFunc: func(ctx context.Context, turns []domain.Turn) (string, error) {
				return "Namaste, here is some guidance.", nil
			},
			QuickPracticeFunc: func(ctx context.Context, ritu almanac.Ritu, part almanac.DayPart, dominant string) (string, error) {
				return "", nil
			},
		},
	}

	svc := NewService(Params{
		Profiles:      m.profiles,
		Consultations: m.consultations,
		Articles:      m.articles,
		Advisor:       m.advisor,
		Now:           func() time.Time { return testNow },
	})
	return svc, m
}

func TestService_Consult_Urgent(t *testing.T) {
	svc, m := newTestService(t)

	res, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "I have chest pain right now"})
	require.NoError(t, err)

	assert.Equal(t, domain.TriageUrgent, res.TriageLevel)
	assert.Equal(t, int64(42), res.ConsultationID)
	require.NotNil(t, res.RedFlag)
	assert.Equal(t, "cardiac", res.RedFlag.Category)
	assert.Contains(t, res.Response, "seek immediate medical attention")

	assert.Empty(t, m.advisor.CompleteCalls(), "urgent path never calls the model")

	require.Len(t, m.consultations.CreateCalls(), 1)
	saved := m.consultations.CreateCalls()[0].C
	assert.Equal(t, domain.TriageUrgent, saved.TriageLevel)
	require.Len(t, saved.RedFlags, 1)
	assert.Equal(t, "chest pain", saved.RedFlags[0].Keyword)
	assert.Equal(t, "Sharad (Autumn)", saved.Season)
}

func TestService_Consult_Normal(t *testing.T) {
	svc, m := newTestService(t)

	res, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "what should my daily routine look like?"})
	require.NoError(t, err)

	assert.Equal(t, domain.TriageNone, res.TriageLevel)
	assert.Equal(t, "Namaste, here is some guidance.", res.Response)
	assert.Equal(t, int64(42), res.ConsultationID)

	require.Len(t, m.advisor.CompleteCalls(), 1)
	turns := m.advisor.CompleteCalls()[0].Turns
	require.Len(t, turns, 2, "system plus current user turn")
	assert.Equal(t, domain.RoleSystem, turns[0].Role)
	assert.Equal(t, "what should my daily routine look like?", turns[1].Content)

	require.Len(t, m.consultations.CreateCalls(), 1)
	saved := m.consultations.CreateCalls()[0].C
	assert.Empty(t, saved.CautionFlags)
	assert.Equal(t, res.Response, saved.Response)
}

func TestService_Consult_KitchenRemedy(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "how can I improve my digestion?"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Response, "Namaste, here is some guidance."))
	assert.Contains(t, res.Response, "**Kitchen Companion:** Try Fresh ginger tea")
}

func TestService_Consult_Caution(t *testing.T) {
	svc, m := newTestService(t)

	res, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "I am pregnant, what herbs are safe?"})
	require.NoError(t, err)

	assert.Equal(t, domain.TriageCaution, res.TriageLevel)
	assert.True(t, strings.HasPrefix(res.Response, "**CAUTION**: You mentioned pregnancy."), "advisory leads the response")
	assert.Contains(t, res.Response, "Namaste, here is some guidance.")

	require.Len(t, m.advisor.CompleteCalls(), 1)
	turns := m.advisor.CompleteCalls()[0].Turns
	last := turns[len(turns)-1]
	assert.Contains(t, last.Content, "**CAUTION**", "advisory attached to the user turn")

	saved := m.consultations.CreateCalls()[0].C
	require.Len(t, saved.CautionFlags, 1)
	assert.Equal(t, "pregnancy", saved.CautionFlags[0].Category)
}

func TestService_Consult_IndicatorAccumulation(t *testing.T) {
	svc, m := newTestService(t)

	_, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "I feel anxious and my hands are always cold"})
	require.NoError(t, err)

	require.Len(t, m.profiles.UpdateScoresCalls(), 1)
	call := m.profiles.UpdateScoresCalls()[0]
	assert.Equal(t, "asha", call.UserID)
	assert.Equal(t, domain.DoshaScores{Vata: 100, Pitta: 0, Kapha: 0}, call.Scores)
	assert.Equal(t, "vata", call.Dominant)
}

func TestService_Consult_LLMFailure(t *testing.T) {
	svc, m := newTestService(t)
	m.advisor.CompleteFunc = func(ctx context.Context, turns []domain.Turn) (string, error) {
		return "", fmt.Errorf("upstream down")
	}

	_, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "any tips for my routine?"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate response")
	assert.Empty(t, m.consultations.CreateCalls(), "nothing persisted on model failure")
}

func TestService_Consult_CustomSystemPrompt(t *testing.T) {
	_, m := newTestService(t)

	var sysTurn string
	m.advisor.CompleteFunc = func(ctx context.Context, turns []domain.Turn) (string, error) {
		require.NotEmpty(t, turns)
		sysTurn = turns[0].Content
		return "short answer", nil
	}

	svc := NewService(Params{
		Profiles:      m.profiles,
		Consultations: m.consultations,
		Articles:      m.articles,
		Advisor:       m.advisor,
		SystemPrompt:  "You are a terse wellness assistant.",
		Now:           func() time.Time { return testNow },
	})

	_, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "any tips for my routine?"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sysTurn, "You are a terse wellness assistant."))
}

func TestService_Consult_EmptyMessage(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Consult(context.Background(), Request{UserID: "asha"})
	require.Error(t, err)
}

func TestService_Consult_ReferencedArticles(t *testing.T) {
	svc, m := newTestService(t)
	m.articles.ListPublishedFunc = func(ctx context.Context, limit int) ([]*domain.Article, error) {
		out := make([]*domain.Article, 5)
		for i := range out {
			out[i] = &domain.Article{ID: int64(i + 1), Title: fmt.Sprintf("Article %d", i+1)}
		}
		return out, nil
	}

	res, err := svc.Consult(context.Background(), Request{UserID: "asha", Message: "what should I know about my routine?"})
	require.NoError(t, err)

	require.Len(t, res.Articles, 3, "top three articles referenced")
	saved := m.consultations.CreateCalls()[0].C
	assert.Equal(t, []int64{1, 2, 3}, saved.ArticleIDs)
}

func TestService_Consult_ProvidedSymptomsWin(t *testing.T) {
	svc, m := newTestService(t)

	provided := []domain.Symptom{{Name: "knee pain", Severity: 8}}
	_, err := svc.Consult(context.Background(), Request{
		UserID:   "asha",
		Message:  "my headache is back",
		Symptoms: provided,
	})
	require.NoError(t, err)

	saved := m.consultations.CreateCalls()[0].C
	assert.Equal(t, provided, saved.Symptoms, "client symptoms replace auto-extraction")
}

func TestService_QuickPractice(t *testing.T) {
	svc, m := newTestService(t)
	m.profiles.GetFunc = func(ctx context.Context, userID string) (*domain.Profile, error) {
		return &domain.Profile{UserID: userID, Assessed: true, Dominant: "pitta"}, nil
	}
	called := false
	m.advisor.QuickPracticeFunc = func(ctx context.Context, ritu almanac.Ritu, part almanac.DayPart, dominant string) (string, error) {
		called = true
		return "breathe slowly", nil
	}

	practice, err := svc.QuickPractice(context.Background(), "asha")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "breathe slowly", practice)
	require.Len(t, m.advisor.QuickPracticeCalls(), 1)
	assert.Equal(t, "pitta", m.advisor.QuickPracticeCalls()[0].Dominant)
	assert.Equal(t, "Sharad (Autumn)", m.advisor.QuickPracticeCalls()[0].Ritu.Name)
}
