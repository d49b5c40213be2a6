package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/chatbot"
	"portfolio-backend/internal/common"
	"portfolio-backend/internal/store/rabbitmq"
)

// clientKey derives the rate-limit bucket for a request: first forwarded-for
// hop, then the real-IP header, then a shared "unknown" bucket. All clients
// the proxy cannot identify deliberately share that last bucket.
func clientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	return "unknown"
}

type chatReq struct {
	Message             string         `json:"message"`
	ConversationHistory []chatbot.Turn `json:"conversationHistory"`
}

type chatResp struct {
	Success        bool   `json:"success"`
	Reply          string `json:"reply,omitempty"`
	Error          string `json:"error,omitempty"`
	ProcessingTime int64  `json:"processingTime,omitempty"`
}

// HandleChat is the public visitor chat endpoint. Unlike the admin API it
// answers in the `{success, reply, error, processingTime}` shape the site
// widget expects.
func (h *Handler) HandleChat(c *gin.Context) {
	start := time.Now()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, chatResp{Success: false, Error: "invalid request body"})
		return
	}

	res := h.Chat.Handle(c.Request.Context(), clientKey(c), req.Message, req.ConversationHistory)
	elapsed := time.Since(start)

	if res.Status != http.StatusOK {
		c.JSON(res.Status, chatResp{Success: false, Error: res.Error})
		return
	}

	c.JSON(http.StatusOK, chatResp{
		Success:        true,
		Reply:          res.Reply,
		ProcessingTime: elapsed.Milliseconds(),
	})

	h.publishInteraction(res, elapsed)
}

// publishInteraction records a served reply for the analytics worker.
// Fire-and-forget: a broker outage never affects the chat response.
func (h *Handler) publishInteraction(res chatbot.Result, elapsed time.Duration) {
	if h.Rabbit == nil {
		return
	}

	id, err := common.NewULID()
	if err != nil {
		log.Printf("[chat] ulid: %v", err)
		return
	}
	evt := rabbitmq.InteractionEvent{
		EventID:    id,
		Category:   string(res.Category),
		Direct:     res.Direct,
		Fallback:   res.Fallback,
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Rabbit.PublishInteraction(ctx, evt); err != nil {
			log.Printf("[chat] publish interaction event=%s err=%v", evt.EventID, err)
		}
	}()
}
