// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/debatelive/internal/command"
	"github.com/tomtom215/debatelive/internal/state"
)

// ListComments returns a content's comments in insertion order.
//
// @Summary List comments
// @Tags Comments
// @Produce json
// @Param content_id query string true "Content id"
// @Success 200 {object} models.Response{data=[]state.Comment} "Comments in insertion order"
// @Failure 400 {object} models.Response "content_id missing"
// @Failure 404 {object} models.Response "Unknown content"
// @Router /api/v1/comments [get]
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	contentID := queryParam(r, "content_id", "contentId", "stream_id")
	if contentID == "" {
		respondError(w, r, state.Validationf("content_id is required"))
		return
	}

	comments, err := h.store.Comments(contentID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, comments, "")
}

// AddComment posts a comment.
//
// @Summary Add a comment
// @Description Missing user and avatar fall back to the anonymous defaults
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body command.CommentCommand true "Comment"
// @Success 200 {object} models.Response{data=state.Comment} "Comment added"
// @Failure 400 {object} models.Response "Invalid comment"
// @Failure 404 {object} models.Response "Unknown content"
// @Router /api/comment [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	cmd, err := command.DecodeComment(body)
	if err != nil {
		respondError(w, r, err)
		return
	}

	c, err := h.processor.AddComment(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, c, "comment added")
}

// LikeComment adds a like to a comment.
//
// @Summary Like a comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body command.CommentRef true "Comment reference"
// @Success 200 {object} models.Response{data=state.Comment} "Comment liked"
// @Failure 400 {object} models.Response "Invalid reference"
// @Failure 404 {object} models.Response "Unknown comment"
// @Router /api/like [post]
func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	ref, err := command.DecodeCommentRef(body)
	if err != nil {
		respondError(w, r, err)
		return
	}

	c, err := h.processor.LikeComment(r.Context(), ref)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, c, "comment liked")
}

// RemoveComment deletes a comment. The content id comes from the body or
// the content_id query parameter.
//
// @Summary Remove a comment
// @Tags Comments
// @Produce json
// @Param commentId path string true "Comment id"
// @Param content_id query string false "Content id, when not in the body"
// @Success 200 {object} models.Response "Comment removed"
// @Failure 400 {object} models.Response "Invalid reference"
// @Failure 404 {object} models.Response "Unknown comment"
// @Router /api/comment/{commentId} [delete]
func (h *Handler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	ref, err := command.DecodeCommentRef(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if id := chi.URLParam(r, "commentId"); id != "" {
		ref.CommentID = id
	}
	if ref.ContentID == "" {
		ref.ContentID = queryParam(r, "content_id", "contentId")
	}

	if err := h.processor.RemoveComment(r.Context(), ref); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, state.CommentRemoved{ContentID: ref.ContentID, CommentID: ref.CommentID}, "comment removed")
}
