package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPageSize は NewPageRequest に0が渡されたときに使うページサイズです。
const DefaultPageSize = 10

// NewPageRequest はクエリパラメータから PageRequest を組み立てます。
// 空文字列の場合は1ページ目と defaultSize を使います。
// maxSize が0の場合はページサイズに上限を設けません。
func NewPageRequest(numberStr, sizeStr string, defaultSize, maxSize int) (PageRequest, error) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	req := PageRequest{Number: 1, Size: defaultSize}

	if numberStr != "" {
		n, err := parseInt(numberStr)
		if err != nil || n < 1 {
			return PageRequest{}, NewValidationError("invalid pageNumber parameter: must be a positive integer")
		}
		req.Number = n
	}

	if sizeStr != "" {
		n, err := parseInt(sizeStr)
		if err != nil || n < 1 {
			return PageRequest{}, NewValidationError("invalid pageSize parameter: must be a positive integer")
		}
		if maxSize > 0 && n > maxSize {
			return PageRequest{}, NewValidationErrorf("invalid pageSize parameter: must not exceed %d", maxSize)
		}
		req.Size = n
	}

	return req, nil
}

// ParseID は name という名前の必須の正のIDを解析します。
func ParseID(name, s string) (int64, error) {
	if s == "" {
		return 0, NewValidationErrorf("%s is required", name)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationErrorf("invalid %s: %q", name, s)
	}
	return id, nil
}

// ParseOptionalID は空文字列を nil として扱う ParseID です。
func ParseOptionalID(name, s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := ParseID(name, s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// SearchTerm は検索語を正規化します。空白のみの場合は絞り込みを行いません。
func SearchTerm(s string) string {
	return strings.TrimSpace(s)
}

// parseInt は10進数の文字列を int に変換します。
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return n, nil
}
