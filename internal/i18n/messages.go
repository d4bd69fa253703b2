package i18n

type entry struct {
	en string
	mr string
}

// messages carries the paired translations for every translatable string.
// Validation and confirmation texts keep the wording customers already know
// from the shop's original site.
var messages = map[string]entry{
	// Navigation and page chrome
	"nav_home":     {en: "Home", mr: "मुख्यपृष्ठ"},
	"nav_products": {en: "Our Drinks", mr: "आमची पेये"},
	"nav_order":    {en: "Order", mr: "ऑर्डर"},
	"nav_contact":  {en: "Contact", mr: "संपर्क"},
	"hero_title":   {en: "JK Soda Water", mr: "जेके सोडा वॉटर"},
	"hero_tagline": {en: "Fresh, fizzy and made to order", mr: "ताजे, फसफसणारे आणि ऑर्डरनुसार"},
	"hero_order":   {en: "Order Now", mr: "आता ऑर्डर करा"},

	// Order builder
	"order_title":        {en: "Build Your Order", mr: "तुमची ऑर्डर तयार करा"},
	"order_pick_flavour": {en: "Pick a flavour", mr: "एक स्वाद निवडा"},
	"order_quantity":     {en: "Quantity", mr: "संख्या"},
	"order_add_item":     {en: "Add to Order", mr: "ऑर्डरमध्ये जोडा"},
	"order_remove":       {en: "Remove", mr: "हटाएं"},
	"order_no_items":     {en: "No items yet. Add products above!", mr: "अभी तक कोई आइटम नहीं। ऊपर उत्पादन जोड़ें!"},
	"order_total":        {en: "Total", mr: "कुल"},
	"order_your_name":    {en: "Your Name", mr: "तुमचे नाव"},
	"order_submit":       {en: "Place Order", mr: "ऑर्डर द्या"},

	// Contact form
	"contact_title":   {en: "Get in Touch", mr: "संपर्क साधा"},
	"contact_name":    {en: "Your Name", mr: "तुमचे नाव"},
	"contact_email":   {en: "Your Email", mr: "तुमचा ईमेल"},
	"contact_subject": {en: "Subject", mr: "विषय"},
	"contact_message": {en: "Your Message", mr: "तुमचा संदेश"},
	"contact_send":    {en: "Send Message", mr: "संदेश पाठवा"},

	// Rating modal
	"rating_title":      {en: "Rate this drink", mr: "या पेयाला रेट करा"},
	"rating_your_name":  {en: "Your Name", mr: "तुमचे नाव"},
	"rating_review":     {en: "Write a review (optional)", mr: "पुनरावलोकन लिहा (ऐच्छिक)"},
	"rating_submit":     {en: "Submit Rating", mr: "रेटिंग पाठवा"},
	"rating_cancel":     {en: "Cancel", mr: "रद्द करा"},
	"rate_this_product": {en: "Rate", mr: "रेट करा"},

	// Validation failures
	"err_select_flavour": {en: "Please select a flavour!", mr: "कृपया एक स्वाद चुनें!"},
	"err_invalid_flavour": {
		en: "Invalid flavour! Please choose from the list.",
		mr: "अमान्य स्वाद! कृपया सूची से चुनें।",
	},
	"err_enter_name":    {en: "Please enter your name!", mr: "कृपया अपना नाम दर्ज करें!"},
	"err_add_one_item":  {en: "Please add at least one item!", mr: "कृपया कम से कम एक आइटम जोड़ें!"},
	"err_fill_fields":   {en: "Please fill in all fields.", mr: "कृपया सर्व फील्ड भरा."},
	"err_select_rating": {en: "Please select a rating!", mr: "कृपया रेटिंग निवडा!"},

	// Confirmations. order_confirmed takes customer name, item summary.
	"msg_order_confirmed": {
		en: "✓ Order Confirmed! Name: %s. %s. We will call you soon!",
		mr: "✓ ऑर्डर पुष्टि! नाम: %s. %s. आम्ही जल्द ही कॉल करेंगे!",
	},
	"msg_message_thanks": {
		en: "Thank you for your message! We will get back to you soon.",
		mr: "आपल्या संदेशासाठी धन्यवाद! आम्ही लवकरच आपल्याशी संपर्क साधू.",
	},
	"msg_rating_thanks": {
		en: "Thank you for your rating! Your feedback is valuable to us.",
		mr: "आपली रेटिंगसाठी धन्यवाद! आपका मतलब आमच्यासाठी महत्वाचा आहे.",
	},

	// Admin panel
	"admin_title":            {en: "Admin Panel", mr: "प्रशासन पॅनेल"},
	"admin_tab_orders":       {en: "Orders", mr: "ऑर्डर"},
	"admin_tab_messages":     {en: "Messages", mr: "संदेश"},
	"admin_tab_ratings":      {en: "Ratings", mr: "रेटिंग"},
	"admin_total_orders":     {en: "Total Orders", mr: "एकूण ऑर्डर"},
	"admin_pending":          {en: "Pending", mr: "प्रलंबित"},
	"admin_completed":        {en: "Completed", mr: "पूर्ण"},
	"admin_total_messages":   {en: "Total Messages", mr: "एकूण संदेश"},
	"admin_unread":           {en: "Unread", mr: "न वाचलेले"},
	"admin_total_ratings":    {en: "Total Ratings", mr: "एकूण रेटिंग"},
	"admin_avg_rating":       {en: "Average Rating", mr: "सरासरी रेटिंग"},
	"admin_no_orders":        {en: "No orders yet", mr: "अजून ऑर्डर नाहीत"},
	"admin_no_messages":      {en: "No messages yet", mr: "अजून संदेश नाहीत"},
	"admin_no_ratings":       {en: "No ratings yet", mr: "अजून रेटिंग नाहीत"},
	"admin_clear_order":      {en: "Clear Order", mr: "ऑर्डर हटवा"},
	"admin_delete":           {en: "Delete", mr: "हटवा"},
	"admin_mark_read":        {en: "Mark as Read", mr: "वाचले म्हणून चिन्हांकित करा"},
	"admin_mark_unread":      {en: "Mark as Unread", mr: "न वाचलेले म्हणून चिन्हांकित करा"},
	"admin_confirm_delete":   {en: "Are you sure you want to delete this order?", mr: "तुम्हाला ही ऑर्डर हटवायची आहे का?"},
	"admin_confirm_rating":   {en: "Are you sure you want to delete this rating?", mr: "तुम्हाला हे रेटिंग हटवायचे आहे का?"},
	"admin_status_pending":   {en: "⏳ Pending", mr: "⏳ प्रलंबित"},
	"admin_status_completed": {en: "✓ Completed", mr: "✓ पूर्ण"},
	"admin_toggle_status":    {en: "Toggle Status", mr: "स्थिती बदला"},
}
