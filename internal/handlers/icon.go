// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	// maxIconSize caps icon uploads at 5 MB; stores send square PNGs far
	// below that.
	maxIconSize = 5 << 20
)

// allowedIconTypes are MIME types accepted for app icons. The build
// pipeline rescales from these, so no SVG or animated formats.
var allowedIconTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// UploadIcon replaces the app's icon with a multipart-uploaded image.
// The file lands in the public assets bucket and the app row points at
// its URL; the previous icon object is deleted best-effort.
func (h *Apps) UploadIcon(w http.ResponseWriter, r *http.Request) {
	app := h.appFromRequest(w, r)
	if app == nil {
		return
	}
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxIconSize+1024)
	if err := r.ParseMultipartForm(maxIconSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "icon too large, maximum is 5 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxIconSize {
		respondError(w, http.StatusRequestEntityTooLarge, "icon too large, maximum is 5 MB")
		return
	}

	// Sniff the real content type; the client-supplied header is not trusted.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	contentType := http.DetectContentType(sniff[:n])

	ext, ok := allowedIconTypes[contentType]
	if !ok {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("icon type %q not allowed, use PNG, JPEG, or WebP", contentType))
		return
	}
	if fileExt := filepath.Ext(header.Filename); fileExt != "" {
		ext = fileExt
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	now := time.Now()
	key := fmt.Sprintf("icons/%s/%d%02d-%s%s", app.ID, now.Year(), now.Month(), uuid.New(), ext)

	url, err := h.storage.UploadAsset(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		slog.Error("icon upload failed", "error", err, "app", app.ID)
		respondError(w, http.StatusInternalServerError, "icon upload failed")
		return
	}

	oldIcon := app.IconURL
	app.IconURL = &url
	if err := h.appStore.Update(app); err != nil {
		slog.Error("icon url save failed", "error", err, "app", app.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Old object cleanup never fails the request.
	if oldIcon != nil {
		if oldKey, ours := h.storage.ExtractAssetKey(*oldIcon); ours {
			if err := h.storage.DeleteAsset(r.Context(), oldKey); err != nil {
				slog.Warn("old icon delete failed", "error", err, "key", oldKey)
			}
		}
	}

	respondJSON(w, http.StatusCreated, map[string]string{"icon_url": url})
}

// DeleteIcon clears the app's icon and removes the stored object.
func (h *Apps) DeleteIcon(w http.ResponseWriter, r *http.Request) {
	app := h.appFromRequest(w, r)
	if app == nil {
		return
	}
	if app.IconURL == nil {
		respondError(w, http.StatusNotFound, "app has no icon")
		return
	}

	old := *app.IconURL
	app.IconURL = nil
	if err := h.appStore.Update(app); err != nil {
		slog.Error("icon clear failed", "error", err, "app", app.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if h.storage != nil {
		if key, ours := h.storage.ExtractAssetKey(old); ours {
			if err := h.storage.DeleteAsset(r.Context(), key); err != nil {
				slog.Warn("icon object delete failed", "error", err, "key", key)
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
