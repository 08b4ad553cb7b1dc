// Package adtext 从管理员粘贴的广告联盟代码片段中提取结构化配置。
//
// 支持两种输入形态：HTML meta 标签
//
//	<meta name="google-adsense-account" content="ca-pub-1234567890123456">
//
// 以及 ads.txt 记录行
//
//	google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0
//
// 无法识别的文本不会报错，只是得到空字段。
package adtext

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	pubPrefix    = "ca-pub-"
	appPrefix    = "ca-app-pub-"
	adsTxtDomain = "google.com"
)

// Result 解析结果，MetaTag 与 PublisherID 相同
type Result struct {
	PublisherID   string   `json:"publisher_id"`
	MetaTag       string   `json:"meta_tag"`
	AdsTxtContent string   `json:"ads_txt_content"`
	AdUnitIDs     []string `json:"ad_unit_ids"`
}

// Parse 纯函数，无副作用。发布商 id 取文档顺序中第一个 ca-pub 记号，
// 没有时再看 google.com 开头的 ads.txt 记录
func Parse(raw string) Result {
	var pubs, units []string
	for _, frag := range fragments(raw) {
		p, u := scan(frag)
		pubs = append(pubs, p...)
		units = append(units, u...)
	}
	lines := adsTxtLines(raw)

	var publisher string
	if len(pubs) > 0 {
		publisher = pubs[0]
	}
	if publisher == "" {
		for _, line := range lines {
			if id := adsTxtPublisherID(line); id != "" {
				publisher = id
				break
			}
		}
	}

	return Result{
		PublisherID:   publisher,
		MetaTag:       publisher,
		AdsTxtContent: strings.Join(lines, "\n"),
		AdUnitIDs:     dedupe(units),
	}
}

// fragments 用 HTML 分词器按文档顺序切出文本、注释、标签名、属性名和属性值，
// 属性值中的实体已反转义（如 ca&#45;pub-1）。末尾未闭合的标签按原文保留。
func fragments(raw string) []string {
	var out []string
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		if z.Next() == html.ErrorToken {
			if rest := z.Raw(); len(rest) > 0 {
				out = append(out, string(rest))
			}
			return out
		}
		tok := z.Token()
		out = append(out, tok.Data)
		for _, a := range tok.Attr {
			out = append(out, a.Key, a.Val)
		}
	}
}

// scan 从左到右扫描 ca-pub-<digits> 与 ca-app-pub-<digits>/<digits> 记号
func scan(s string) (pubs, units []string) {
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], appPrefix) {
			if unit, end := readUnitID(s, i); unit != "" {
				units = append(units, unit)
				i = end
				continue
			}
			i += len(appPrefix)
			continue
		}
		if strings.HasPrefix(s[i:], pubPrefix) {
			if id, end := readPubID(s, i); id != "" {
				pubs = append(pubs, id)
				i = end
				continue
			}
			i += len(pubPrefix)
			continue
		}
		i++
	}
	return pubs, units
}

// readPubID 读取 s[i:] 开头的 ca-pub-<digits>，返回记号与结束位置
func readPubID(s string, i int) (string, int) {
	if !strings.HasPrefix(s[i:], pubPrefix) {
		return "", i
	}
	start := i + len(pubPrefix)
	end := digitsEnd(s, start)
	if end == start {
		return "", i
	}
	return s[i:end], end
}

func readUnitID(s string, i int) (string, int) {
	start := i + len(appPrefix)
	slash := digitsEnd(s, start)
	if slash == start || slash >= len(s) || s[slash] != '/' {
		return "", i
	}
	end := digitsEnd(s, slash+1)
	if end == slash+1 {
		return "", i
	}
	return s[i:end], end
}

func digitsEnd(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// adsTxtLines 以 google.com 开头（忽略大小写与首尾空白）的行，保持原顺序
func adsTxtLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(t), adsTxtDomain) {
			out = append(out, t)
		}
	}
	return out
}

// adsTxtPublisherID 解析一条 ads.txt 记录的账号字段，统一为 ca-pub-<digits>
func adsTxtPublisherID(line string) string {
	fields := strings.Split(line, ",")
	if len(fields) < 2 || !strings.EqualFold(strings.TrimSpace(fields[0]), adsTxtDomain) {
		return ""
	}
	account := strings.TrimSpace(fields[1])
	account = strings.TrimPrefix(account, "ca-")
	if !strings.HasPrefix(account, "pub-") {
		return ""
	}
	digits := account[len("pub-"):]
	if digits == "" || digitsEnd(digits, 0) != len(digits) {
		return ""
	}
	return pubPrefix + digits
}

// dedupe 去重并保持首次出现的顺序
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
