package knowledge

// builtinEntries is the advice table compiled into the binary. Order
// matters: the first matching entry wins.
func builtinEntries() []*Entry {
	return []*Entry{
		mustEntry("focus",
			[]string{`focus`, `deep work`, `concentrat`, `distract`},
			"Protecting focus usually comes down to three moves:\n"+
				"- Block one 50-minute slot, pick a single task, and close everything else.\n"+
				"- Put your phone in another room; friction beats willpower.\n"+
				"- Write down interruptions instead of acting on them, then batch them after the slot."),
		mustEntry("email",
			[]string{`email`, `inbox`},
			"A calmer inbox in three steps:\n"+
				"- Process email in two or three fixed windows a day instead of continuously.\n"+
				"- Apply the 2-minute rule: reply now if it is quick, otherwise park it on a list.\n"+
				"- Unsubscribe aggressively; every recurring sender is a recurring decision."),
		mustEntry("meetings",
			[]string{`meeting`, `stand-?up`, `1:1`, `one-on-one`},
			"Meetings earn their time when:\n"+
				"- Every invite carries a goal and an agenda; no agenda, no meeting.\n"+
				"- Someone owns the notes and the decisions land in writing within the hour.\n"+
				"- Default length is 25 or 50 minutes so people can actually switch context."),
		mustEntry("procrastination",
			[]string{`procrastinat`, `stuck`, `can.?t (get )?start`, `motivat`},
			"Getting unstuck is mostly about shrinking the first step:\n"+
				"- Commit to just 10 minutes; starting is the hard part, not continuing.\n"+
				"- Make the next action physical and concrete: open the file, write one sentence.\n"+
				"- Pair the task with something pleasant, and forgive the days that slip."),
		mustEntry("learning",
			[]string{`learn`, `study`, `practice`, `new skill`},
			"Skills stick faster with:\n"+
				"- Short daily sessions over long weekend marathons; spacing beats cramming.\n"+
				"- Active recall: close the material and reproduce it from memory.\n"+
				"- A visible project that forces you to use the skill for something real."),
		mustEntry("habits",
			[]string{`habit`, `routine`, `morning`, `consistency`},
			"Durable habits are built small:\n"+
				"- Anchor the new habit to an existing one (after coffee, before commute).\n"+
				"- Start laughably small, then let the size grow with the streak.\n"+
				"- Track it somewhere visible; missing twice in a row is the real failure mode."),
	}
}

func mustEntry(id string, topics []string, advice string) *Entry {
	entry, err := NewEntry(id, topics, advice)
	if err != nil {
		panic(err)
	}
	return entry
}
