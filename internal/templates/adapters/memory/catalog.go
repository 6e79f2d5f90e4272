// Package memory holds the built-in template catalog. Templates ship with the
// binary, so there is no database behind this adapter.
package memory

import "castboard/internal/templates/core/domain"

type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) ListTemplates() []domain.Template {
	return templates
}

var templates = []domain.Template{
	{
		ID:          "tech-blog-1",
		Title:       "Product Launch Announcement",
		Description: "Announce your new tech product with impact",
		Category:    domain.CategoryBlog,
		Industry:    "tech",
		Tags:        []string{"launch", "announcement", "product"},
		Content: `# Introducing [Product Name]: The Future of [Industry]

We're thrilled to announce the launch of [Product Name], our revolutionary solution that's set to transform how you [main benefit].

## What Makes [Product Name] Different?

After [X months/years] of development, we've created something truly special:

- **[Feature 1]**: [Brief description of benefit]
- **[Feature 2]**: [Brief description of benefit]
- **[Feature 3]**: [Brief description of benefit]

## The Problem We Solved

[Describe the pain point your target audience faces and how your product addresses it]

## Early Access & Pricing

Be among the first to experience [Product Name]. Sign up for early access today and receive [special offer].

[CTA Button: Get Early Access]

---

*Questions? Reach out to our team at [email]*`,
	},
	{
		ID:          "tech-social-1",
		Title:       "Feature Highlight Thread",
		Description: "Twitter/X thread template for product features",
		Category:    domain.CategorySocial,
		Industry:    "tech",
		Tags:        []string{"twitter", "thread", "features"},
		Content: `🧵 Thread: [X] game-changing features in [Product Name] that will blow your mind:

1/ [Feature 1]
[One-liner benefit]
[Brief explanation of how it works]

2/ [Feature 2]
[One-liner benefit]
[Brief explanation of how it works]

3/ [Feature 3]
[One-liner benefit]
[Brief explanation of how it works]

4/ But wait, there's more...
[Bonus feature or upcoming feature teaser]

5/ Ready to try it yourself?
[Link to product]
[Special offer if any]

Like & RT if you found this helpful! 🔄`,
	},
	{
		ID:          "tech-email-1",
		Title:       "Beta Invitation Email",
		Description: "Invite users to test your new product",
		Category:    domain.CategoryEmail,
		Industry:    "tech",
		Tags:        []string{"beta", "invitation", "onboarding"},
		Content: `Subject: You're invited: Exclusive beta access to [Product Name]

Hi [First Name],

You've been selected for exclusive beta access to [Product Name]!

As one of our valued community members, we want you to be among the first to experience what we've been building.

**What you'll get:**
• Early access to all features
• Direct line to our product team
• [Special perk for beta users]
• Your feedback will shape the final product

**Getting started is easy:**
1. Click the button below
2. Create your account
3. Start exploring!

[CTA: Claim Your Beta Access]

This invitation expires in 48 hours, so don't wait!

Questions? Just reply to this email.

Best,
[Your Name]
[Company]`,
	},
	{
		ID:          "marketing-blog-1",
		Title:       "Case Study Template",
		Description: "Showcase client success stories",
		Category:    domain.CategoryBlog,
		Industry:    "marketing",
		Tags:        []string{"case study", "success story", "results"},
		Content: `# How [Client Name] Achieved [X% Result] with [Your Solution]

## The Challenge

[Client Name], a [brief description], faced a significant challenge: [describe the problem they were trying to solve].

> "[Quote from client about their initial struggle]"
> — [Client Name], [Title]

## The Solution

After evaluating several options, [Client Name] chose to partner with us because [reason].

**Our approach included:**
- [Strategy/tactic 1]
- [Strategy/tactic 2]
- [Strategy/tactic 3]

## The Results

Within [timeframe], [Client Name] saw remarkable improvements:

| Metric | Before | After | Change |
|--------|--------|-------|--------|
| [Metric 1] | [X] | [Y] | +[Z]% |
| [Metric 2] | [X] | [Y] | +[Z]% |
| [Metric 3] | [X] | [Y] | +[Z]% |

> "[Quote from client about results]"
> — [Client Name], [Title]

## Key Takeaways

1. [Lesson learned]
2. [Best practice discovered]
3. [Recommendation for others]

---

*Want similar results? [Contact us today](link)*`,
	},
	{
		ID:          "marketing-social-1",
		Title:       "LinkedIn Thought Leadership",
		Description: "Establish authority with insights",
		Category:    domain.CategorySocial,
		Industry:    "marketing",
		Tags:        []string{"linkedin", "thought leadership", "insights"},
		Content: `I've spent [X years] in [industry], and here's what I wish someone told me on day one:

𝟭. [Insight 1]
[Brief explanation]

𝟮. [Insight 2]
[Brief explanation]

𝟯. [Insight 3]
[Brief explanation]

𝟰. [Insight 4]
[Brief explanation]

𝟱. [Insight 5]
[Brief explanation]

The truth is: [Summarizing statement that ties it all together]

What would you add to this list? 👇

---
♻️ Repost if this resonated with you
🔔 Follow me for more insights on [topic]`,
	},
	{
		ID:          "ecommerce-email-1",
		Title:       "Abandoned Cart Recovery",
		Description: "Win back customers who left items behind",
		Category:    domain.CategoryEmail,
		Industry:    "ecommerce",
		Tags:        []string{"cart", "recovery", "discount"},
		Content: `Subject: Forget something? Your cart misses you 🛒

Hi [First Name],

Looks like you left some great items in your cart. Don't worry – we saved them for you!

**Your items are waiting:**
[Product Image] [Product Name] - $[Price]
[Product Image] [Product Name] - $[Price]

**Why complete your order today?**
✓ Free shipping on orders over $[X]
✓ Easy 30-day returns
✓ Secure checkout

[CTA: Complete Your Order]

Still thinking about it? Here's a little nudge:
Use code COMEBACK[X] for [X]% off your order!
*Valid for the next 24 hours*

Need help? Our team is ready to assist.

Happy shopping!
[Brand Name]

P.S. These items are selling fast – grab them before they're gone!`,
	},
	{
		ID:          "ecommerce-product-1",
		Title:       "Product Description",
		Description: "Compelling product page copy",
		Category:    domain.CategoryProduct,
		Industry:    "ecommerce",
		Tags:        []string{"product", "description", "sales"},
		Content: `**[Product Name]**

[One-line value proposition that captures the essence]

---

### Why You'll Love It

[Emotional benefit statement that connects with customer desires]

**Key Features:**
• [Feature 1]: [Benefit explanation]
• [Feature 2]: [Benefit explanation]
• [Feature 3]: [Benefit explanation]
• [Feature 4]: [Benefit explanation]

---

### Specifications
- Material: [Details]
- Dimensions: [Details]
- Weight: [Details]
- Included: [What's in the box]

---

### What Customers Say

⭐⭐⭐⭐⭐ "[Short testimonial]" – [Customer Name]

---

### Satisfaction Guaranteed

[Return policy / warranty information]

**[Price]** | [CTA: Add to Cart]`,
	},
	{
		ID:          "health-blog-1",
		Title:       "Wellness Guide",
		Description: "Educational health content",
		Category:    domain.CategoryBlog,
		Industry:    "health",
		Tags:        []string{"wellness", "health", "guide"},
		Content: `# [X] Science-Backed Ways to [Health Goal]

*Disclaimer: This content is for informational purposes only. Always consult with a healthcare professional before making changes to your health routine.*

## Introduction

[Hook that connects with reader's health journey and goals]

## 1. [Tip/Strategy 1]

**The Science:** [Brief explanation of research]

**How to Apply It:**
- [Actionable step]
- [Actionable step]
- [Actionable step]

## 2. [Tip/Strategy 2]

**The Science:** [Brief explanation of research]

**How to Apply It:**
- [Actionable step]
- [Actionable step]

## 3. [Tip/Strategy 3]

**The Science:** [Brief explanation of research]

**How to Apply It:**
- [Actionable step]
- [Actionable step]

## Quick-Start Checklist

- [ ] [First step to take today]
- [ ] [Second step]
- [ ] [Third step]

## Conclusion

[Encouraging closing that motivates action]

---

*Have questions? [Book a consultation](link) with our team.*`,
	},
	{
		ID:          "education-email-1",
		Title:       "Course Launch Sequence",
		Description: "Promote your online course",
		Category:    domain.CategoryEmail,
		Industry:    "education",
		Tags:        []string{"course", "launch", "education"},
		Content: `Subject: [Course Name] is LIVE! 🎉 (Special launch pricing inside)

Hi [First Name],

The moment you've been waiting for is here!

**[Course Name] is officially open for enrollment!**

I created this course because [personal story/reason]. After helping [X] students achieve [result], I've packed everything into this comprehensive program.

**What You'll Learn:**
✅ Module 1: [Topic] - [Outcome]
✅ Module 2: [Topic] - [Outcome]
✅ Module 3: [Topic] - [Outcome]
✅ Module 4: [Topic] - [Outcome]
✅ BONUS: [Bonus content]

**Launch Special (48 hours only):**
Regular Price: $[X]
Your Price: $[Y] (Save [Z]%!)

[CTA: Enroll Now & Save]

**What students are saying:**
"[Testimonial]" – [Student Name]

Don't wait – this special pricing expires in 48 hours!

To your success,
[Your Name]

P.S. Not sure if this is right for you? [Book a free call](link) and let's chat!`,
	},
	{
		ID:          "finance-social-1",
		Title:       "Financial Tips Carousel",
		Description: "Instagram carousel for financial advice",
		Category:    domain.CategorySocial,
		Industry:    "finance",
		Tags:        []string{"instagram", "carousel", "finance"},
		Content: `📊 INSTAGRAM CAROUSEL: [X] Money Mistakes to Avoid in [Year]

---
SLIDE 1 (Cover):
[X] Money Mistakes Costing You Thousands
💰 Swipe to protect your wallet →

---
SLIDE 2:
Mistake #1: [Mistake]
❌ [What people do wrong]
✅ [What to do instead]

---
SLIDE 3:
Mistake #2: [Mistake]
❌ [What people do wrong]
✅ [What to do instead]

---
SLIDE 4:
Mistake #3: [Mistake]
❌ [What people do wrong]
✅ [What to do instead]

---
SLIDE 5:
Mistake #4: [Mistake]
❌ [What people do wrong]
✅ [What to do instead]

---
SLIDE 6 (CTA):
Ready to take control of your finances?
📲 Link in bio for your free [resource]
💬 DM "MONEY" for more tips
🔔 Follow @[handle] for daily insights

---
CAPTION:
Which of these mistakes have you made? (No judgment – we've all been there! 🙋‍♀️)

Drop a [emoji] in the comments if you're ready to level up your money game!

#financetips #moneymindset #financialfreedom #investing`,
	},
	{
		ID:          "startup-email-1",
		Title:       "Investor Update",
		Description: "Monthly update email for investors",
		Category:    domain.CategoryEmail,
		Industry:    "startup",
		Tags:        []string{"investor", "update", "startup"},
		Content: `Subject: [Company] Investor Update – [Month Year]

Hi [Investor Name],

Here's our monthly update on [Company]'s progress.

**📈 Key Metrics**
| Metric | Last Month | This Month | Change |
|--------|------------|------------|--------|
| MRR | $[X] | $[Y] | [+/-Z]% |
| Active Users | [X] | [Y] | [+/-Z]% |
| [Custom Metric] | [X] | [Y] | [+/-Z]% |

**🎯 Highlights**
- [Achievement 1]
- [Achievement 2]
- [Achievement 3]

**🚧 Challenges**
- [Challenge 1]: [How we're addressing it]
- [Challenge 2]: [How we're addressing it]

**👀 What's Next**
- [Priority 1 for next month]
- [Priority 2 for next month]
- [Priority 3 for next month]

**💰 Runway**
[X] months at current burn rate

**🙏 Asks**
1. [Specific ask/intro needed]
2. [Specific ask/intro needed]

Thanks for your continued support!

Best,
[Founder Name]
CEO, [Company]`,
	},
	{
		ID:          "food-social-1",
		Title:       "Restaurant Social Post",
		Description: "Mouth-watering food content",
		Category:    domain.CategorySocial,
		Industry:    "food",
		Tags:        []string{"restaurant", "food", "instagram"},
		Content: `🍽️ [Dish Name] - Our chef's latest masterpiece!

[Poetic/appetizing description of the dish]

Made with:
🌿 [Ingredient 1] - [origin/quality]
🧀 [Ingredient 2] - [origin/quality]
🍅 [Ingredient 3] - [origin/quality]

Available [timeframe: tonight only / this weekend / all week]!

📍 [Restaurant Name]
📞 Reserve: [Phone] or link in bio
⏰ [Hours]

Tag someone you'd share this with! 👇

#[restaurant] #foodie #[city]eats #[cuisine]food #finedining`,
	},
	{
		ID:          "realestate-email-1",
		Title:       "New Listing Announcement",
		Description: "Property listing email",
		Category:    domain.CategoryEmail,
		Industry:    "realestate",
		Tags:        []string{"listing", "property", "realestate"},
		Content: `Subject: Just Listed: Stunning [X] Bed Home in [Neighborhood] 🏡

Hi [First Name],

I'm excited to share this incredible new listing that just hit the market!

**[Property Address]**
[City, State ZIP]

📐 [X] Beds | [X] Baths | [X,XXX] Sq Ft
💰 Listed at $[Price]

**What Makes This Home Special:**
✨ [Feature 1 - e.g., Gourmet kitchen with marble counters]
✨ [Feature 2 - e.g., Primary suite with spa bathroom]
✨ [Feature 3 - e.g., Private backyard oasis]
✨ [Feature 4 - e.g., Walking distance to top-rated schools]

**Neighborhood Highlights:**
• [X] min to [landmark/downtown]
• Near [popular amenity]
• [School district info]

[CTA: Schedule a Private Showing]

This one won't last long! Contact me to arrange your private tour.

Best,
[Agent Name]
[Phone]
[Email]
[Brokerage]`,
	},
	{
		ID:          "fitness-blog-1",
		Title:       "Workout Guide",
		Description: "Complete workout routine",
		Category:    domain.CategoryBlog,
		Industry:    "fitness",
		Tags:        []string{"workout", "fitness", "training"},
		Content: `# The Ultimate [X]-Week [Goal] Workout Plan

*Perfect for: [Fitness level] | Equipment needed: [List] | Time: [X] min/session*

## Overview

This [X]-week program is designed to help you [specific goal]. By following this plan consistently, you can expect to [expected results].

## Week 1-2: Foundation Phase

### Day 1: [Body Part/Focus]
| Exercise | Sets | Reps | Rest |
|----------|------|------|------|
| [Exercise 1] | 3 | 12 | 60s |
| [Exercise 2] | 3 | 10 | 60s |
| [Exercise 3] | 3 | 15 | 45s |

### Day 2: [Body Part/Focus]
[Similar table structure]

### Day 3: Active Recovery
- [Activity 1]: [Duration]
- [Activity 2]: [Duration]

## Pro Tips

💡 **Form First:** [Tip about proper form]
💡 **Nutrition:** [Brief nutrition advice]
💡 **Rest:** [Recovery recommendation]

## Track Your Progress

- [ ] Week 1 completed
- [ ] Week 2 completed
- [ ] [Milestone measurement]

---

*Need personalized guidance? [Book a session](link) with our trainers.*`,
	},
	{
		ID:          "creative-email-1",
		Title:       "Project Proposal",
		Description: "Creative project proposal",
		Category:    domain.CategoryEmail,
		Industry:    "creative",
		Tags:        []string{"proposal", "creative", "project"},
		Content: `Subject: Creative Proposal for [Project Name] | [Your Agency]

Hi [Client Name],

Thank you for the opportunity to present our vision for [Project Name]. We're excited about the possibilities!

---

**PROJECT UNDERSTANDING**

Based on our conversation, your key objectives are:
1. [Objective 1]
2. [Objective 2]
3. [Objective 3]

---

**OUR APPROACH**

*Phase 1: Discovery ([Timeframe])*
- [Deliverable/Activity]
- [Deliverable/Activity]

*Phase 2: Creative Development ([Timeframe])*
- [Deliverable/Activity]
- [Deliverable/Activity]

*Phase 3: Execution ([Timeframe])*
- [Deliverable/Activity]
- [Deliverable/Activity]

---

**INVESTMENT**

| Phase | Deliverables | Investment |
|-------|--------------|------------|
| Phase 1 | [Summary] | $[X] |
| Phase 2 | [Summary] | $[X] |
| Phase 3 | [Summary] | $[X] |
| **Total** | | **$[Total]** |

Payment terms: [Terms]

---

**NEXT STEPS**

1. Review this proposal
2. [Schedule a call] to discuss any questions
3. Sign off and kick-off!

Looking forward to bringing this vision to life!

Best,
[Your Name]
[Agency Name]`,
	},
}
