package handler

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/pagination"

	"github.com/gin-gonic/gin"
)

func parsePagination(c *gin.Context) pagination.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return pagination.Params{Page: page, Limit: limit}.Normalize()
}

// respondPage 返回分页结果。约定：没有任何匹配时整页以 404 返回，
// 空分页对象仍然放在 data 里
func respondPage(c *gin.Context, page *pagination.Page, okMessage, emptyMessage string) {
	if page.IsEmpty() {
		response.JSON(c, http.StatusNotFound, emptyMessage, page)
		return
	}
	response.OK(c, okMessage, page)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// openMediaFile 把 multipart 文件头转换为服务层的媒体文件描述。
// 调用方负责调用返回的 close
func openMediaFile(fileHeader *multipart.FileHeader) (*service.MediaFile, func(), error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	media := &service.MediaFile{
		Reader:      f,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Ext:         filepath.Ext(fileHeader.Filename),
	}
	return media, func() { f.Close() }, nil
}
