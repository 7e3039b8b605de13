package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nila-backend/internal/domain"
	"nila-backend/internal/llm"
	"nila-backend/internal/repository"
)

// contextTimeLayout es el formato del timestamp que se antepone a cada mensaje
// del historial enviado al modelo. Nunca se persiste ni se devuelve al cliente.
const contextTimeLayout = "2006-01-02 15:04"

const defaultHistoryWindow = 20

var ErrEmptyCompletion = errors.New("empty completion")

// UpstreamError marca fallas del modelo externo; su mensaje sí se expone al
// cliente como diagnóstico, a diferencia de las fallas de persistencia.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "llm generate: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ChatService orquesta un turno de conversación: persiste el mensaje del
// usuario, arma el historial, llama al LLM y persiste las burbujas resultantes.
type ChatService struct {
	logger        *zap.Logger
	messages      repository.MessageRepository
	llmClient     llm.Client
	historyWindow int
	locks         userLocks
}

func NewChatService(logger *zap.Logger, messages repository.MessageRepository, llmClient llm.Client, historyWindow int) *ChatService {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &ChatService{
		logger:        logger,
		messages:      messages,
		llmClient:     llmClient,
		historyWindow: historyWindow,
	}
}

// Chat ejecuta un turno completo y devuelve las burbujas de la respuesta en orden.
//
// El mensaje del usuario se persiste antes de llamar al modelo: si el modelo
// falla, el mensaje no se pierde y el turno aborta sin fabricar respuesta.
// Los turnos concurrentes del mismo usuario se serializan con un mutex por
// usuario para que el historial leído no se interlace con otro turno a medias.
func (s *ChatService) Chat(ctx context.Context, userID, text string) ([]string, error) {
	if s.messages == nil || s.llmClient == nil {
		return nil, errors.New("chat service not configured")
	}

	text = strings.TrimSpace(text)
	if userID == "" || text == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	userMsg := domain.Message{
		ID:      uuid.NewString(),
		UserID:  userID,
		Content: text,
		Role:    domain.RoleUser,
	}
	if _, err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}

	recent, err := s.messages.ListRecentByUserID(ctx, userID, s.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}

	turns := buildModelTurns(recent)

	raw, err := s.llmClient.Generate(ctx, turns)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	bubbles := SplitBubbles(raw)
	if len(bubbles) == 0 {
		return nil, &UpstreamError{Err: ErrEmptyCompletion}
	}

	for _, bubble := range bubbles {
		modelMsg := domain.Message{
			ID:      uuid.NewString(),
			UserID:  userID,
			Content: bubble,
			Role:    domain.RoleModel,
		}
		if _, err := s.messages.Create(ctx, modelMsg); err != nil {
			return nil, fmt.Errorf("persist model message: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("chat turn completed",
			zap.String("user_id", userID),
			zap.Int("bubbles", len(bubbles)),
		)
	}

	return bubbles, nil
}

// History devuelve todos los mensajes del usuario en orden cronológico.
func (s *ChatService) History(ctx context.Context, userID string) ([]domain.Message, error) {
	if s.messages == nil {
		return nil, errors.New("chat service not configured")
	}
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.messages.ListByUserID(ctx, userID)
}

// buildModelTurns reordena los mensajes recientes (que llegan del más nuevo al
// más viejo) a cronológico y antepone el timestamp a cada contenido.
func buildModelTurns(recent []domain.Message) []llm.Turn {
	turns := make([]llm.Turn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		role := domain.RoleUser
		if msg.Role == domain.RoleModel {
			role = domain.RoleModel
		}
		turns = append(turns, llm.Turn{
			Role:    role,
			Content: fmt.Sprintf("[%s] %s", msg.CreatedAt.Format(contextTimeLayout), msg.Content),
		})
	}
	return turns
}

// userLocks serializa turnos por usuario. El mapa crece con los usuarios
// activos del proceso; suficiente para el alcance actual.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
