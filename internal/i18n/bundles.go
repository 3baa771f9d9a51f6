package i18n

var bundles = map[Lang]Bundle{
	English: {
		Nav: Nav{
			Home:      "Home",
			Catalog:   "Catalog",
			Services:  "Services",
			Admin:     "Admin",
			MenuTitle: "Navigation",
		},
		Hero: Hero{
			Badge:       "Creative Studio",
			Title:       "Khaliq.",
			Subtitle:    "Digital Catalog & Design Services",
			Description: "A comprehensive digital platform curating architectural archives, pointillism artistry, and professional web design solutions.",
			CTACatalog:  "Explore Catalog",
			CTAServices: "Start Project",
		},
		Featured: Featured{
			Label:       "Quick Access",
			IntroTitle:  "Start Here",
			IntroDesc:   "Two destinations that summarise the work: the written archive and the professional profile.",
			RepoBadge:   "Archive",
			RepoTitle:   "Repository",
			RepoDesc:    "Academic & Theological Writings.",
			RepoCTA:     "Access",
			RepoURL:     RepositoryURL,
			ResumeBadge: "Profile",
			ResumeTitle: "Curriculum Vitae",
			ResumeDesc:  "Professional Track Record.",
			ResumeCTA:   "View",
			ResumeURL:   ResumeURL,
		},
		Catalog: Catalog{
			Title:       "Project Catalog",
			Empty:       "Catalog is currently being curated.",
			EmptyAdmin:  "Use the + button to populate the gallery.",
			ViewProject: "View Project",
			ViewResume:  "View Document",
		},
		Services: Services{
			Title:               "Open Commission",
			Subtitle:            "Specialization",
			Desc:                "Specialized services tailored to your needs. Select a category below to view details.",
			CTA:                 "Inquire / Order",
			ConsultHint:         "We encourage you to contact us first to discuss your specific requirements and vision.",
			ContactOptionsTitle: "Start Conversation",
			ContactWA:           "Chat via WhatsApp",
			ContactEmail:        "Send Email",
			WhatsAppURL:         WhatsAppURL,
			EmailURL:            EmailURL,
			Close:               "Close",
			Features: map[string]Feature{
				"web": {
					Title: "Web Design",
					Desc:  "Modern, responsive, and aesthetic websites tailored to your personal brand or business needs. Built with the latest tech for speed and beauty.",
				},
				"sketch": {
					Title: "Pointillism Sketch",
					Desc:  "Unique hand-drawn or digital sketches using the pointillism technique. Perfect for gifts, artistic displays, or architectural visualizations.",
				},
			},
		},
		Workflow: Workflow{
			Badge: "Process",
			Title: "How We Work",
			Desc:  "A clear path from the first conversation to launch.",
			Steps: map[string]Feature{
				"consult": {Title: "Consultation", Desc: "We discuss your goals, references and timeline."},
				"design":  {Title: "Design", Desc: "Drafts and sketches are shared for feedback."},
				"dev":     {Title: "Development", Desc: "The approved design is built and refined."},
				"launch":  {Title: "Launch", Desc: "Final delivery, hand-over and support."},
			},
		},
		Toolkit: Toolkit{Title: "Toolkit"},
		Admin: Admin{
			LoginTitle: "Admin Access",
			LoginDesc:  "Enter passcode to manage content.",
			Logout:     "Log Out",
			Welcome:    "Welcome back, Admin",
			Error:      "Incorrect passcode",
			AddProject: "Add Project",
		},
	},
	Indonesian: {
		Nav: Nav{
			Home:      "Beranda",
			Catalog:   "Katalog",
			Services:  "Jasa",
			Admin:     "Admin",
			MenuTitle: "Navigasi",
		},
		Hero: Hero{
			Badge:       "Creative Studio",
			Title:       "Khaliq.",
			Subtitle:    "Katalog Digital & Jasa Desain",
			Description: "Platform kurasi digital yang menampilkan arsip arsitektur, karya seni pointilisme, dan solusi web desain profesional.",
			CTACatalog:  "Jelajahi Katalog",
			CTAServices: "Mulai Proyek",
		},
		Featured: Featured{
			Label:       "Akses Cepat",
			IntroTitle:  "Mulai dari Sini",
			IntroDesc:   "Dua tujuan yang merangkum karya: arsip tulisan dan profil profesional.",
			RepoBadge:   "Arsip",
			RepoTitle:   "Repositori",
			RepoDesc:    "Tulisan Akademik & Teologis.",
			RepoCTA:     "Akses",
			RepoURL:     RepositoryURL,
			ResumeBadge: "Profil",
			ResumeTitle: "Curriculum Vitae",
			ResumeDesc:  "Rekam Jejak Profesional.",
			ResumeCTA:   "Lihat",
			ResumeURL:   ResumeURL,
		},
		Catalog: Catalog{
			Title:       "Katalog Proyek",
			Empty:       "Katalog sedang dalam proses kurasi.",
			EmptyAdmin:  "Gunakan tombol + untuk mengisi galeri.",
			ViewProject: "Lihat Proyek",
			ViewResume:  "Lihat Dokumen",
		},
		Services: Services{
			Title:               "Open Commission",
			Subtitle:            "Spesialisasi",
			Desc:                "Pilih kategori di bawah untuk melihat detail layanan kami.",
			CTA:                 "Tanya / Pesan",
			ConsultHint:         "Silakan hubungi kami terlebih dahulu untuk mendiskusikan visi dan spesifikasi yang Anda inginkan.",
			ContactOptionsTitle: "Mulai Percakapan",
			ContactWA:           "Chat via WhatsApp",
			ContactEmail:        "Kirim Email",
			WhatsAppURL:         WhatsAppURL,
			EmailURL:            EmailURL,
			Close:               "Tutup",
			Features: map[string]Feature{
				"web": {
					Title: "Desain Web",
					Desc:  "Website modern, responsif, dan estetis yang disesuaikan dengan personal branding atau kebutuhan bisnis Anda. Dibuat dengan teknologi terkini.",
				},
				"sketch": {
					Title: "Sketsa Pointilisme",
					Desc:  "Sketsa unik (manual/digital) menggunakan teknik pointilisme (titik-titik). Sangat cocok untuk hadiah, pajangan artistik, atau visualisasi arsitektur.",
				},
			},
		},
		Workflow: Workflow{
			Badge: "Proses",
			Title: "Cara Kami Bekerja",
			Desc:  "Alur yang jelas dari percakapan pertama hingga peluncuran.",
			Steps: map[string]Feature{
				"consult": {Title: "Konsultasi", Desc: "Kami membahas tujuan, referensi, dan jadwal Anda."},
				"design":  {Title: "Desain", Desc: "Draf dan sketsa dibagikan untuk mendapat masukan."},
				"dev":     {Title: "Pengembangan", Desc: "Desain yang disetujui dibangun dan disempurnakan."},
				"launch":  {Title: "Peluncuran", Desc: "Serah terima akhir dan dukungan."},
			},
		},
		Toolkit: Toolkit{Title: "Perangkat"},
		Admin: Admin{
			LoginTitle: "Akses Admin",
			LoginDesc:  "Masukkan kode akses untuk mengelola konten.",
			Logout:     "Keluar",
			Welcome:    "Selamat datang kembali",
			Error:      "Kode akses salah",
			AddProject: "Tambah Proyek",
		},
	},
}
