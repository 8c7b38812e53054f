package feed

import (
	"time"

	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// FallbackItems returns the fixed sample dataset shown when live retrieval
// fails entirely. Timestamps are relative to now so the feed still reads as
// recent.
func FallbackItems(now time.Time) []models.NewsItem {
	ts := now.Unix()
	return []models.NewsItem{
		{
			ID:         "e4c2d1b0-a9f8-47e3-b5c6-3d2a1f09e8b7",
			Signal:     "Trump taps Space Force general to lead $831B 'Golden Dome' missile shield",
			Timestamp:  ts - 1800,
			Enrichment: "President Trump's selection of Space Force General Michael Guetlein to lead the $831 billion \"Golden Dome\" missile defense initiative represents a significant shift in national security strategy. The Golden Dome project aims to create a comprehensive missile defense system leveraging advanced technologies including satellite networks and AI-powered interception systems. Gen. Guetlein's background in space operations and missile defense technologies makes him a strategic choice for this ambitious national security undertaking.",
			Likes:      28,
			Dislikes:   4,
		},
		{
			ID:         "f5d3e2c1-b0a9-48f4-c6b5-4e3d2c1b0a9f",
			Signal:     "Arbus and BIOS integrate via BasisOS to enhance DeFAI agents in Virtuals.io ecosystem",
			Timestamp:  ts - 3600,
			Enrichment: "The integration of ARBUS and BIOS through BasisOS represents a significant advancement in decentralized financial AI (DeFAI) agent technology. By merging BasisOS's sophisticated agent framework with ARBUS's robust data infrastructure, the collaboration creates a more powerful ecosystem for automated financial interactions. This partnership is expected to dramatically improve scalability and efficiency within the virtuals.io platform, potentially revolutionizing how decentralized autonomous organizations operate and interact with financial markets.",
			Likes:      15,
			Dislikes:   2,
		},
		{
			ID:         "a1b2c3d4-e5f6-g7h8-i9j0-k1l2m3n4o5p6",
			Signal:     "World raises $135 million from a16z and Bain Capital Crypto for network expansion",
			Timestamp:  ts - 7200,
			Enrichment: "The successful $135 million funding round led by Andreessen Horowitz and Bain Capital Crypto marks a significant milestone for World's network expansion plans. This substantial investment reflects growing institutional confidence in decentralized infrastructure projects. The capital is expected to accelerate World's development roadmap, enhance scalability, and expand their global presence in the rapidly evolving digital ecosystem landscape.",
			Likes:      34,
			Dislikes:   1,
		},
		{
			ID:         "b5c72e9d-12a4-4b1c-8e9f-67d921e87520",
			Signal:     "Trump in serious peace talks with Iran",
			Timestamp:  ts - 14400,
			Enrichment: "President Trump's diplomatic engagement with Iran represents a potential breakthrough in Middle East relations. These negotiations are focusing on addressing key areas of contention including nuclear capabilities, economic sanctions, and regional security concerns. Diplomatic sources suggest that both sides are showing unprecedented willingness to compromise on previously intractable issues, potentially opening the door to a comprehensive peace agreement that could reshape geopolitical dynamics across the region.",
			Likes:      45,
			Dislikes:   12,
		},
		{
			ID:         "7d8e5f4c-3b2a-1d0e-9f8g-6h5j4k3l2m1n",
			Signal:     "Telegram shuts down Haowang Guarantee, suspected Chinese darknet hub for crypto scams",
			Timestamp:  ts - 86400,
			Enrichment: "Telegram's decisive action against Haowang Guarantee marks a significant blow to cryptocurrency-based criminal operations. The marketplace had become notorious for facilitating various illicit activities including fraud, money laundering, and the distribution of compromised financial data. This shutdown follows a months-long investigation coordinated between Telegram's security team and international law enforcement agencies. The operation highlights growing efforts by digital platforms to combat the use of their infrastructure for criminal enterprises, particularly those exploiting cryptocurrency transactions.",
			Likes:      56,
			Dislikes:   3,
		},
	}
}
