package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// SignParams 按媒体云公开的签名规则对参数签名：
// 参数按 key 升序排成 k=v 并以 & 连接，末尾拼接 API Secret，取 SHA-1 十六进制
func (c *Client) SignParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	payload := strings.Join(pairs, "&") + c.cfg.APISecret
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// SignUpload 对直传授权的 {folder, timestamp} 参数对签名
func (c *Client) SignUpload(folder string, timestamp int64) string {
	return c.SignParams(map[string]string{
		"folder":    folder,
		"timestamp": strconv.FormatInt(timestamp, 10),
	})
}
