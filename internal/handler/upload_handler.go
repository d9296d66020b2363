package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	_ "golang.org/x/image/webp"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// saveUploadedImage 将上传的图片写入 uploadDir 下的 subdir，
// 文件名为时间戳前缀加净化后的原始文件名，返回对外可访问的路径。
// 声明的 Content-Type 不是图片类型时拒绝，不做内容嗅探。
func (a *API) saveUploadedImage(c *gin.Context, subdir string) (string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return "", false
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "File must be an image")
		return "", false
	}

	targetDir := filepath.Join(a.uploadDir, subdir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		a.log.Error("failed to create upload directory", "dir", targetDir, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create upload directory")
		return "", false
	}

	timestamp := time.Now().Format("20060102_150405")
	safeName := unsafeFilenameChars.ReplaceAllString(file.Filename, "_")
	filename := fmt.Sprintf("%s_%s", timestamp, safeName)

	if err := c.SaveUploadedFile(file, filepath.Join(targetDir, filename)); err != nil {
		a.log.Error("failed to save uploaded file", "filename", filename, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to save file")
		return "", false
	}

	return fmt.Sprintf("%s/%s/%s", a.uploadURL, subdir, filename), true
}

// probeImageDimensions 读取上传文件的像素宽高，支持 png/jpeg/gif/webp。
// 探测失败返回 0,0，不作为上传失败处理。
func probeImageDimensions(file *multipart.FileHeader) (int, int) {
	reader, err := file.Open()
	if err != nil {
		return 0, 0
	}
	defer reader.Close()

	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
