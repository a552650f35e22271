package coach

import (
	"context"

	"github.com/sagarmenon/writing-coach-agent/memory"
)

type weeklyPrompt struct {
	Subject string
	Body    string
}

// weeklyRotation is the fixed cycle of Sunday check-ins, used verbatim when
// there is no session history to personalize from.
var weeklyRotation = []weeklyPrompt{
	{
		Subject: "Writing Coach — Sunday Check-In #1",
		Body: `Sagar.

It's Sunday. Here's your question for the week:

**The chawl visit essay.** You've been carrying this for three years.
One sentence in Menon's Principles. That's all it's gotten.

This week I want you to write the first 200 words — scene only, no argument.
Put yourself in that staircase. What did it smell like.
What were you carrying. What did the kids look at first.

Reply to this email with whatever you wrote this week — draft, fragment,
even just a paragraph. Or reply with what you didn't write and why.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #2",
		Body: `Sagar.

Sunday again.

This week's question: What is the second-layer argument of whatever
you're currently writing? State it in one sentence. Not what the piece
is about — the non-obvious thing it arrives at.

If you can't state it, the piece isn't ready to write yet.

Reply with your draft, fragment, or what stopped you this week.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #3",
		Body: `Sagar.

Week three.

The arranged marriage → communication essay. You've mentioned this
observation in at least two pieces and never written it.

This week: just write the opening scene. One Mauka classroom session.
One student. One specific moment where the communication gap became visible
and you understood where it came from.

Don't write the argument yet. Just the scene.

Reply with whatever you have — draft, resistance, both.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #4",
		Body: `Sagar.

Month one check-in.

You committed to: 800 word minimum, one scene per personal essay,
no endings that recap, word essays only with a stated second-layer argument.

How many of those held this month? Be specific — which pieces, which rules broke.

Reply with your draft and your honest audit.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #5",
		Body: `Sagar.

This week I want you to write zero frameworks.

No 'there are three things.' No numbered lists. No 'here's how to X.'
Just one scene, 600 words, from your life in the last seven days.
The more ordinary the better. You showed what you can do with a PUC uncle.
Do it again with something from this week.

Reply with the scene.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #6",
		Body: `Sagar.

The Confidence Needs Curiosity essay. You published the thesis.
400 words. Called it done.

This week: write the middle. Three specific people in three specific
rooms where you watched someone try to perform confidence without
the curiosity underneath it. What happened. What their face looked like.
What you couldn't fix.

The essay is in those three moments. Everything else is connective tissue.

Reply with your draft.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #7",
		Body: `Sagar.

Seven weeks in.

One question this week, and I want a real answer:

What piece are you most afraid to write? Not the hardest — the most afraid.
There's a difference. The hardest piece is the one you don't know how to do yet.
The piece you're afraid of is the one you know exactly how to do
and haven't started because of what it will cost you.

Name it. Then reply with whatever you wrote this week.

— Your Coach`,
	},
	{
		Subject: "Writing Coach — Sunday Check-In #8",
		Body: `Sagar.

Two months.

Read your two best pieces back to back — EdTech failing and PUC certificates.
Notice the difference in what they're doing formally. One argues. One inhabits.
Both work. Neither approach is your default — they're both choices you made deliberately.

This week: make a deliberate choice about what your current draft needs.
State the choice at the top of your reply. Then paste the draft.

— Your Coach`,
	},
}

// RotationPrompt returns the fixed check-in for a week number. Week 1 maps
// to the first entry; the cycle repeats.
func RotationPrompt(week int) (subject, body string) {
	n := len(weeklyRotation)
	idx := ((week-1)%n + n) % n
	p := weeklyRotation[idx]
	return p.Subject, p.Body
}

// WeeklyPrompt produces the next check-in email. With no history the fixed
// rotation body is returned as-is; otherwise the body is generated from the
// coaching brief and recent sessions, with the rotation entry as the theme.
// A generation failure is a hard failure, like any coaching call.
func (o *Orchestrator) WeeklyPrompt(ctx context.Context, week int, history []memory.SessionRecord) (subject, body string, err error) {
	subject, body = RotationPrompt(week)
	if len(history) == 0 {
		return subject, body, nil
	}
	generated, err := o.llm.Complete(ctx, buildWeeklyPrompt(o.profile, memory.Summarize(history), body))
	if err != nil {
		return "", "", err
	}
	return subject, generated, nil
}
