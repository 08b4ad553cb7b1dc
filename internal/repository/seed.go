package repository

import (
	"context"
	"fmt"
	"time"

	"ArcadeFlow/internal/model"
)

const day = 24 * time.Hour

// Seed 写入演示数据；目录非空时跳过（幂等）。返回是否实际写入
func Seed(ctx context.Context, repos *Repositories, now time.Time) (bool, error) {
	existing, err := repos.Games.List(ctx)
	if err != nil {
		return false, fmt.Errorf("查询游戏目录失败: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	games := []model.Game{
		{
			Title:       "Space Explorer",
			Description: "Explore the vastness of space in this exciting adventure game. Navigate through asteroid fields and discover new planets.",
			Category:    "Adventure",
			ImageURL:    "https://placehold.co/400x300/1F2937/3B82F6?text=Space+Explorer",
			GameURL:     "https://example.com/space-explorer",
		},
		{
			Title:       "Puzzle Master",
			Description: "Challenge your mind with increasingly difficult puzzles. Test your logic and problem-solving skills.",
			Category:    "Puzzle",
			ImageURL:    "https://placehold.co/400x300/1F2937/10B981?text=Puzzle+Master",
			GameURL:     "https://example.com/puzzle-master",
		},
		{
			Title:       "Racing Thunder",
			Description: "Feel the adrenaline rush in this high-speed racing game. Compete against AI opponents on various tracks.",
			Category:    "Racing",
			ImageURL:    "https://placehold.co/400x300/1F2937/FBBF24?text=Racing+Thunder",
			GameURL:     "https://example.com/racing-thunder",
		},
		{
			Title:       "Arcade Fighter",
			Description: "Classic arcade fighting action with modern graphics. Master combo moves and defeat opponents.",
			Category:    "Action",
			ImageURL:    "https://placehold.co/400x300/1F2937/EF4444?text=Arcade+Fighter",
			GameURL:     "https://example.com/arcade-fighter",
		},
	}
	for i := range games {
		at := now.Add(-time.Duration(i+1) * day)
		games[i].CreatedAt, games[i].UpdatedAt = at, at
		if err := repos.Games.Create(ctx, &games[i]); err != nil {
			return false, fmt.Errorf("写入游戏失败: %w, title: %s", err, games[i].Title)
		}
	}

	ago := func(days int) int64 { return now.Add(-time.Duration(days) * day).UnixMilli() }
	ratings := []model.Rating{
		{GameID: 1, UserID: "user-1", Rating: 5, Timestamp: ago(1)},
		{GameID: 1, UserID: "user-2", Rating: 4, Timestamp: ago(2)},
		{GameID: 1, UserID: "user-3", Rating: 5, Timestamp: ago(3)},
		{GameID: 2, UserID: "user-1", Rating: 4, Timestamp: ago(2)},
		{GameID: 2, UserID: "user-4", Rating: 5, Timestamp: ago(4)},
		{GameID: 3, UserID: "user-2", Rating: 3, Timestamp: ago(3)},
		{GameID: 4, UserID: "user-3", Rating: 4, Timestamp: ago(4)},
	}
	for i := range ratings {
		if err := repos.Ratings.Upsert(ctx, &ratings[i]); err != nil {
			return false, fmt.Errorf("写入评分失败: %w", err)
		}
	}

	comments := []model.Comment{
		{GameID: 1, UserID: "user-1", Username: "User-ABCD1234", CommentText: "Amazing space adventure! The graphics are stunning and the gameplay is smooth.", Timestamp: ago(1)},
		{GameID: 1, UserID: "user-2", Username: "User-EFGH5678", CommentText: "Really enjoyed exploring different planets. Great game!", Timestamp: ago(2)},
		{GameID: 2, UserID: "user-3", Username: "User-IJKL9012", CommentText: "The puzzles are challenging but fair. Perfect for brain training.", Timestamp: ago(3)},
		{GameID: 3, UserID: "user-1", Username: "User-ABCD1234", CommentText: "Fast-paced racing action! Love the different tracks.", Timestamp: ago(4)},
		{GameID: 4, UserID: "user-4", Username: "User-MNOP3456", CommentText: "Classic fighting game mechanics done right. Nostalgic!", Timestamp: ago(5)},
	}
	for i := range comments {
		if err := repos.Comments.Append(ctx, &comments[i]); err != nil {
			return false, fmt.Errorf("写入评论失败: %w", err)
		}
	}

	// 页面内容按顺序写入，id 依次为 1..4，后续新建从 5 开始
	contents := []model.Content{
		{Type: model.ContentAbout, Title: "About Arcade Flow", Content: aboutText},
		{Type: model.ContentContact, Title: "Contact Us", Content: contactText},
		{Type: model.ContentPrivacy, Title: "Privacy Policy", Content: privacyText},
		{Type: model.ContentDisclaimer, Title: "Disclaimer", Content: disclaimerText},
	}
	for i := range contents {
		contents[i].CreatedAt, contents[i].UpdatedAt = now, now
		if err := repos.Contents.Create(ctx, &contents[i]); err != nil {
			return false, fmt.Errorf("写入页面内容失败: %w, type: %s", err, contents[i].Type)
		}
	}

	ads := &model.AdConfig{
		PublisherID:      "pub-XXXXXXXXXXXXXXXX",
		MetaTag:          "ca-pub-XXXXXXXXXXXXXXXX",
		VerificationCode: "YOUR_VERIFICATION_CODE_HERE",
		AdsTxtContent:    "google.com, pub-XXXXXXXXXXXXXXXX, DIRECT, f08c47fec0942fa0",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	ads.SetAdUnitIDs(nil)
	if err := repos.Ads.Save(ctx, ads); err != nil {
		return false, fmt.Errorf("写入广告配置失败: %w", err)
	}
	return true, nil
}

const aboutText = `Welcome to Arcade Flow, your premier destination for HTML5 games!

We are passionate about bringing you the best gaming experience directly in your browser. Our platform features a carefully curated collection of high-quality HTML5 games that work seamlessly across all devices.

Our mission is to provide entertainment for everyone, from casual gamers looking for a quick break to dedicated players seeking their next adventure. We believe that great games should be accessible to all, which is why our platform is completely free to use.

At Arcade Flow, we're constantly working to expand our game library and improve your gaming experience. We welcome feedback and suggestions from our community.`

const contactText = `We'd love to hear from you! Get in touch with our team for support, feedback, or business inquiries.

Email Support:
support@arcadeflow.com

Business Inquiries:
business@arcadeflow.com

General Questions:
info@arcadeflow.com

Response Time:
We aim to respond to all inquiries within 24-48 hours during business days.

Hours of Operation:
Monday - Friday: 9:00 AM - 6:00 PM PST
Weekends: Limited support available`

const privacyText = `Privacy Policy for Arcade Flow

Introduction:
At Arcade Flow, we respect your privacy and are committed to protecting your personal information. This Privacy Policy explains how we collect, use, and safeguard your information when you use our gaming platform.

Information We Collect:
• Anonymous usage data to improve our services
• Browser information for compatibility
• Game preferences and statistics
• Feedback and communications you send us

Data Security:
We implement appropriate security measures to protect your information against unauthorized access, alteration, disclosure, or destruction.

Contact Us:
If you have questions about this Privacy Policy, please contact us at privacy@arcadeflow.com`

const disclaimerText = `Legal Disclaimer for Arcade Flow

General Information:
The information on this website is provided on an 'as is' basis. To the fullest extent permitted by law, Arcade Flow excludes all representations, warranties, obligations, and liabilities.

Gaming Content:
• Games are provided for entertainment purposes only
• We do not guarantee uninterrupted access to games
• Game availability may vary and change without notice

Limitation of Liability:
Arcade Flow shall not be liable for any indirect, incidental, special, consequential, or punitive damages resulting from your use of our platform.

Modifications:
We reserve the right to modify this disclaimer at any time without prior notice.`
